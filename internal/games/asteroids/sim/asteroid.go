package sim

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var (
	// ErrInvalidSize is returned for a size tier outside the configured tiers.
	ErrInvalidSize = errors.New("invalid size")
	// ErrInvalidVariety is returned for an unknown asteroid outline.
	ErrInvalidVariety = errors.New("invalid variety")
)

// NewAsteroid creates an asteroid of the given size tier and outline variety
// at rest. Out-of-range arguments are rejected, never clamped.
func NewAsteroid(cfg config.AsteroidConfig, size, variety int) (*Entity, error) {
	if size < 0 || size >= len(cfg.Scale) {
		return nil, fmt.Errorf("sim: asteroid size %d: %w", size, ErrInvalidSize)
	}
	if variety < 0 || variety >= AsteroidVarieties {
		return nil, fmt.Errorf("sim: asteroid variety %d: %w", variety, ErrInvalidVariety)
	}
	return &Entity{
		kind:    KindAsteroid,
		shape:   scaled(core.Shape{asteroidOutlines[variety]}, cfg.Scale[size]),
		Tier:    size,
		Variety: variety,
	}, nil
}

// SpawnAsteroid adds an asteroid at the given point moving at speed in a
// random direction with a random facing. Speed is capped at the tier limit
// scaled by the world's speed factor.
func (w *World) SpawnAsteroid(size, variety int, at core.Vec2, speed float64) (*Entity, error) {
	e, err := NewAsteroid(w.Config.Asteroid, size, variety)
	if err != nil {
		return nil, err
	}
	if limit := w.asteroidSpeedCap(size); speed > limit {
		speed = limit
	}
	e.SetPosition(at.X, at.Y)
	e.SetVelocity(speed, w.randAngle())
	e.SetRotation(w.randAngle())
	return w.Spawn(e), nil
}

// RandomAsteroid adds an asteroid of a random variety with a speed drawn
// from the upper half of its tier's range.
func (w *World) RandomAsteroid(size int, at core.Vec2) (*Entity, error) {
	if size < 0 || size >= len(w.Config.Asteroid.MaxSpeed) {
		return nil, fmt.Errorf("sim: asteroid size %d: %w", size, ErrInvalidSize)
	}
	limit := w.asteroidSpeedCap(size)
	speed := limit/2 + w.rng.Float64()*limit/2
	return w.SpawnAsteroid(size, w.rng.Intn(AsteroidVarieties), at, speed)
}

func (w *World) asteroidSpeedCap(size int) float64 {
	return w.Config.Asteroid.MaxSpeed[size] * w.SpeedFactor
}

func mustEntity(e *Entity, err error) *Entity {
	if err != nil {
		panic(err)
	}
	return e
}

var bangBySize = [...]core.Sound{
	config.SizeSmall:  core.SoundBangSmall,
	config.SizeMedium: core.SoundBangMedium,
	config.SizeLarge:  core.SoundBangLarge,
}

func asteroidDestroyed(w *World, e *Entity, _ *Entity) {
	at := e.Position()
	for range w.Config.Asteroid.Specks {
		w.spawnDebris(at, w.randAngle(), debrisSpeck,
			w.randDuration(w.Config.Debris.SpeckMinDuration, w.Config.Debris.SpeckMaxDuration))
	}
	if w.Config.Asteroid.Split && e.Tier > config.SizeSmall {
		for range 2 {
			mustEntity(w.RandomAsteroid(e.Tier-1, at))
		}
	}
	if e.Tier < len(bangBySize) {
		w.Sound.Play(bangBySize[e.Tier])
	}
}
