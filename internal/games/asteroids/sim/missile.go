package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// moveMissile steers toward the current target by at most the configured
// turn rate, accelerates, and travels along its facing.
func moveMissile(w *World, e *Entity) {
	cfg := w.Config.Missile
	if t := w.missileTarget(e); t != nil {
		want := w.Delta(e.Position(), t.Position()).Angle()
		diff := core.NormalizeAngle(want - e.Rotation)
		rate := cfg.TurnRate()
		e.Rotate(math.Max(-rate, math.Min(rate, diff)))
	}
	speed := math.Min(e.Speed+cfg.Acceleration, cfg.SpeedLimit)
	e.SetVelocity(speed, e.Rotation)
	e.Move(w.Size())
}

// missileTarget keeps the current quarry while it lives, otherwise picks
// the nearest alien, then the nearest asteroid.
func (w *World) missileTarget(e *Entity) *Entity {
	if t := w.Arena.Get(e.Target); t != nil {
		return t
	}
	t := w.Nearest(e.Position(), KindAlien)
	if t == nil {
		t = w.Nearest(e.Position(), KindAsteroid)
	}
	e.Target = t.Handle()
	return t
}
