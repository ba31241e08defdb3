package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultAsteroidsYAML))
	copy(out, defaultAsteroidsYAML)
	return out
}

// DefaultAsteroidsConfig returns the built-in Asteroids configuration.
// It mirrors defaults/asteroids.yaml and is the last fallback of the loader.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Size:       750,
			EdgeOffset: 150,
		},
		Timing: TimingConfig{
			TickInterval:       33 * time.Millisecond,
			EndDelay:           2500 * time.Millisecond,
			RespawnDelay:       2 * time.Second,
			AlienDelay:         5 * time.Second,
			AlienFireInterval:  1200 * time.Millisecond,
			AlienSteerInterval: 2 * time.Second,
		},
		Beat: BeatConfig{
			Initial: 900 * time.Millisecond,
			Fastest: 300 * time.Millisecond,
			Delta:   9 * time.Millisecond,
		},
		Ship: ShipConfig{
			Lives:        3,
			Acceleration: 0.65,
			Friction:     -0.05,
			TurnDegrees:  11.25,
			SpeedLimit:   15,
		},
		Bullet: BulletConfig{
			Speed:    15,
			Duration: time.Second,
			Limit:    8,
		},
		Asteroid: AsteroidConfig{
			Scale:     [3]float64{0.5, 1, 2},
			Score:     [3]int{100, 50, 20},
			MaxSpeed:  [3]float64{8, 5, 3},
			BaseCount: 4,
			PerLevel:  1,
			Specks:    6,
		},
		Alien: AlienConfig{
			MinLevel:         2,
			SmallLevel:       3,
			Scale:            [2]float64{0.5, 1},
			Score:            [2]int{1000, 200},
			Speed:            [2]float64{5, 3},
			AimJitterDegrees: 5,
			Turn:             1,
		},
		Missile: MissileConfig{
			Speed:        4,
			Acceleration: 0.5,
			SpeedLimit:   12,
			TurnDegrees:  3,
			Duration:     5 * time.Second,
			Limit:        2,
		},
		Debris: DebrisConfig{
			ShipDuration:     1500 * time.Millisecond,
			SpeckMinDuration: 250 * time.Millisecond,
			SpeckMaxDuration: 1750 * time.Millisecond,
			MaxSpeed:         3,
		},
		Colors: ColorConfig{
			Ship:        "bright-cyan",
			Asteroid:    "white",
			Alien:       "bright-magenta",
			Bullet:      "bright-yellow",
			AlienBullet: "bright-red",
			Missile:     "orange",
			Debris:      "gray",
			HUD:         "bright-white",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:     0.5,
				AlienDelayReduction: 2 * time.Second,
			},
		},
	}
}

// EnhancedAsteroidsConfig returns the defaults with the enhanced-mode
// features switched on: splitting asteroids and homing missiles.
func EnhancedAsteroidsConfig(base AsteroidsConfig) AsteroidsConfig {
	base.Asteroid.Split = true
	base.Missile.Enabled = true
	return base
}
