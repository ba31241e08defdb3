package sim

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// spawnDebris adds an inert fragment drifting along direction for life.
func (w *World) spawnDebris(at core.Vec2, direction float64, shape core.Shape, life time.Duration) *Entity {
	e := &Entity{kind: KindDebris, shape: shape}
	e.SetPosition(at.X, at.Y)
	speed := 0.0
	if n := w.Config.Debris.MaxSpeed; n > 0 {
		speed = float64(w.rng.Intn(n))
	}
	e.SetVelocity(speed, direction)
	e.SetRotation(w.randAngle())
	w.Spawn(e)
	w.After(e, TagExpire, life)
	return e
}
