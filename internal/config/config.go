// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids platform.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Size tiers shared by asteroids (three tiers) and aliens (two tiers).
const (
	SizeSmall = iota
	SizeMedium
	SizeLarge
)

// AsteroidsConfig contains every tunable constant of the simulation.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Timing     TimingConfig     `yaml:"timing"`
	Beat       BeatConfig       `yaml:"beat"`
	Ship       ShipConfig       `yaml:"ship"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Alien      AlienConfig      `yaml:"alien"`
	Missile    MissileConfig    `yaml:"missile"`
	Debris     DebrisConfig     `yaml:"debris"`
	Colors     ColorConfig      `yaml:"colors"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the toroidal play field.
type WorldConfig struct {
	Size       float64 `yaml:"size"`        // Side length of the square world
	EdgeOffset float64 `yaml:"edge_offset"` // Distance from edges where new asteroids appear
}

// TimingConfig defines the tick interval and every deferred transition delay.
type TimingConfig struct {
	TickInterval       time.Duration `yaml:"tick_interval"`
	EndDelay           time.Duration `yaml:"end_delay"`     // Pause after a level clear or final life
	RespawnDelay       time.Duration `yaml:"respawn_delay"` // Pause before a new ship appears
	AlienDelay         time.Duration `yaml:"alien_delay"`   // Gap between one alien's end and the next
	AlienFireInterval  time.Duration `yaml:"alien_fire_interval"`
	AlienSteerInterval time.Duration `yaml:"alien_steer_interval"`
}

// BeatConfig defines the two-phase heartbeat tempo.
type BeatConfig struct {
	Initial time.Duration `yaml:"initial"`
	Fastest time.Duration `yaml:"fastest"`
	Delta   time.Duration `yaml:"delta"` // Shortening applied after every beat
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Lives              int           `yaml:"lives"`
	Acceleration       float64       `yaml:"acceleration"`
	Friction           float64       `yaml:"friction"` // Negative fraction of speed lost per tick
	TurnDegrees        float64       `yaml:"turn_degrees"`
	SpeedLimit         float64       `yaml:"speed_limit"`
	AutoThrustInterval time.Duration `yaml:"auto_thrust_interval"` // 0 disables scripted bursts
}

// BulletConfig defines player and alien bullets.
type BulletConfig struct {
	Speed    float64       `yaml:"speed"`
	Duration time.Duration `yaml:"duration"`
	Limit    int           `yaml:"limit"` // Maximum live player bullets
}

// AsteroidConfig defines the asteroid tiers, indexed small, medium, large.
type AsteroidConfig struct {
	Scale     [3]float64 `yaml:"scale"`
	Score     [3]int     `yaml:"score"`
	MaxSpeed  [3]float64 `yaml:"max_speed"`
	BaseCount int        `yaml:"base_count"` // Asteroids in the level 1 field
	PerLevel  int        `yaml:"per_level"`  // Extra asteroids for each level after the first
	Split     bool       `yaml:"split"`      // Break into two smaller asteroids when destroyed
	Specks    int        `yaml:"specks"`     // Debris specks spawned on destruction
}

// AlienConfig defines the alien saucer, indexed small, large.
type AlienConfig struct {
	MinLevel         int        `yaml:"min_level"`   // First level on which aliens appear
	SmallLevel       int        `yaml:"small_level"` // First level with small, aiming aliens
	Scale            [2]float64 `yaml:"scale"`
	Score            [2]int     `yaml:"score"`
	Speed            [2]float64 `yaml:"speed"`
	AimJitterDegrees int        `yaml:"aim_jitter_degrees"`
	Turn             float64    `yaml:"turn"` // Radians off horizontal for diagonal headings
}

// MissileConfig defines homing missiles.
type MissileConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Speed        float64       `yaml:"speed"`
	Acceleration float64       `yaml:"acceleration"`
	SpeedLimit   float64       `yaml:"speed_limit"`
	TurnDegrees  float64       `yaml:"turn_degrees"` // Maximum heading change per tick
	Duration     time.Duration `yaml:"duration"`
	Limit        int           `yaml:"limit"`
}

// DebrisConfig defines decorative fragments.
type DebrisConfig struct {
	ShipDuration     time.Duration `yaml:"ship_duration"`
	SpeckMinDuration time.Duration `yaml:"speck_min_duration"`
	SpeckMaxDuration time.Duration `yaml:"speck_max_duration"`
	MaxSpeed         int           `yaml:"max_speed"` // Exclusive upper bound for drift speed
}

// ColorConfig names palette colors for each kind of entity.
type ColorConfig struct {
	Ship        string `yaml:"ship"`
	Asteroid    string `yaml:"asteroid"`
	Alien       string `yaml:"alien"`
	Bullet      string `yaml:"bullet"`
	AlienBullet string `yaml:"alien_bullet"`
	Missile     string `yaml:"missile"`
	Debris      string `yaml:"debris"`
	HUD         string `yaml:"hud"`
}

// DifficultyConfig defines how the game gets harder as levels advance.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives difficulty upward.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Level/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max difficulty.
type ScalingConfig struct {
	SpeedMultiplier     float64       `yaml:"speed_multiplier"`      // Added to asteroid speed factor
	AlienDelayReduction time.Duration `yaml:"alien_delay_reduction"` // Subtracted from alien delay
}

// TurnRate returns the ship's per-tick rotation in radians.
func (c ShipConfig) TurnRate() float64 {
	return c.TurnDegrees * math.Pi / 180
}

// TurnRate returns the missile's maximum per-tick heading change in radians.
func (c MissileConfig) TurnRate() float64 {
	return c.TurnDegrees * math.Pi / 180
}

// FieldSize returns how many asteroids make up the field on the given level.
func (c AsteroidConfig) FieldSize(level int) int {
	if level < 1 {
		level = 1
	}
	return c.BaseCount + c.PerLevel*(level-1)
}

// Palette resolves the configured color names.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	var errs []error
	for _, f := range []struct {
		dst  *core.Color
		name string
		key  string
	}{
		{&p.Ship, c.Ship, "ship"},
		{&p.Asteroid, c.Asteroid, "asteroid"},
		{&p.Alien, c.Alien, "alien"},
		{&p.Bullet, c.Bullet, "bullet"},
		{&p.AlienBullet, c.AlienBullet, "alien_bullet"},
		{&p.Missile, c.Missile, "missile"},
		{&p.Debris, c.Debris, "debris"},
		{&p.HUD, c.HUD, "hud"},
	} {
		col, err := core.ParseColor(f.name)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.key, err))
		}
		*f.dst = col
	}
	return p, errors.Join(errs...)
}

// Palette holds resolved colors for rendering.
type Palette struct {
	Ship, Asteroid, Alien, Bullet, AlienBullet, Missile, Debris, HUD core.Color
}

// Validate checks every field and returns all problems joined into one error.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("invalid %s: %v", field, v))
		}
	}

	check(c.World.Size > 0, "world.size", c.World.Size)
	check(c.World.EdgeOffset >= 0 && c.World.EdgeOffset < c.World.Size/2, "world.edge_offset", c.World.EdgeOffset)

	check(c.Timing.TickInterval > 0, "timing.tick_interval", c.Timing.TickInterval)
	check(c.Timing.EndDelay >= 0, "timing.end_delay", c.Timing.EndDelay)
	check(c.Timing.RespawnDelay >= 0, "timing.respawn_delay", c.Timing.RespawnDelay)
	check(c.Timing.AlienDelay > 0, "timing.alien_delay", c.Timing.AlienDelay)
	check(c.Timing.AlienFireInterval > 0, "timing.alien_fire_interval", c.Timing.AlienFireInterval)
	check(c.Timing.AlienSteerInterval > 0, "timing.alien_steer_interval", c.Timing.AlienSteerInterval)

	check(c.Beat.Fastest > 0, "beat.fastest", c.Beat.Fastest)
	check(c.Beat.Initial >= c.Beat.Fastest, "beat.initial", c.Beat.Initial)
	check(c.Beat.Delta >= 0, "beat.delta", c.Beat.Delta)

	check(c.Ship.Lives > 0, "ship.lives", c.Ship.Lives)
	check(c.Ship.Acceleration > 0, "ship.acceleration", c.Ship.Acceleration)
	check(c.Ship.Friction <= 0 && c.Ship.Friction > -1, "ship.friction", c.Ship.Friction)
	check(c.Ship.SpeedLimit > 0, "ship.speed_limit", c.Ship.SpeedLimit)
	check(c.Ship.AutoThrustInterval >= 0, "ship.auto_thrust_interval", c.Ship.AutoThrustInterval)

	check(c.Bullet.Speed > 0, "bullet.speed", c.Bullet.Speed)
	check(c.Bullet.Duration > 0, "bullet.duration", c.Bullet.Duration)
	check(c.Bullet.Limit > 0, "bullet.limit", c.Bullet.Limit)

	for i := range c.Asteroid.Scale {
		check(c.Asteroid.Scale[i] > 0, fmt.Sprintf("asteroid.scale[%d]", i), c.Asteroid.Scale[i])
		check(c.Asteroid.Score[i] >= 0, fmt.Sprintf("asteroid.score[%d]", i), c.Asteroid.Score[i])
		check(c.Asteroid.MaxSpeed[i] > 0, fmt.Sprintf("asteroid.max_speed[%d]", i), c.Asteroid.MaxSpeed[i])
	}
	check(c.Asteroid.BaseCount > 0, "asteroid.base_count", c.Asteroid.BaseCount)
	check(c.Asteroid.PerLevel >= 0, "asteroid.per_level", c.Asteroid.PerLevel)
	check(c.Asteroid.Specks >= 0, "asteroid.specks", c.Asteroid.Specks)

	check(c.Alien.MinLevel >= 1, "alien.min_level", c.Alien.MinLevel)
	check(c.Alien.SmallLevel >= c.Alien.MinLevel, "alien.small_level", c.Alien.SmallLevel)
	for i := range c.Alien.Scale {
		check(c.Alien.Scale[i] > 0, fmt.Sprintf("alien.scale[%d]", i), c.Alien.Scale[i])
		check(c.Alien.Score[i] >= 0, fmt.Sprintf("alien.score[%d]", i), c.Alien.Score[i])
		check(c.Alien.Speed[i] > 0, fmt.Sprintf("alien.speed[%d]", i), c.Alien.Speed[i])
	}
	check(c.Alien.AimJitterDegrees >= 0, "alien.aim_jitter_degrees", c.Alien.AimJitterDegrees)

	if c.Missile.Enabled {
		check(c.Missile.Duration > 0, "missile.duration", c.Missile.Duration)
		check(c.Missile.Limit > 0, "missile.limit", c.Missile.Limit)
		check(c.Missile.SpeedLimit > 0, "missile.speed_limit", c.Missile.SpeedLimit)
		check(c.Missile.TurnDegrees > 0, "missile.turn_degrees", c.Missile.TurnDegrees)
	}

	check(c.Debris.ShipDuration > 0, "debris.ship_duration", c.Debris.ShipDuration)
	check(c.Debris.SpeckMaxDuration >= c.Debris.SpeckMinDuration, "debris.speck_max_duration", c.Debris.SpeckMaxDuration)
	check(c.Debris.MaxSpeed > 0, "debris.max_speed", c.Debris.MaxSpeed)

	switch c.Difficulty.Progression.Type {
	case "", "none", "level", "score":
	default:
		check(false, "difficulty.progression.type", c.Difficulty.Progression.Type)
	}

	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
