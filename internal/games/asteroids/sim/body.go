package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Body is the motion state shared by every entity: a position on the torus,
// a velocity as speed plus direction, and a rotation that is independent of
// the direction of travel.
type Body struct {
	X, Y      float64
	Speed     float64 // Always >= 0
	Direction float64 // Radians
	Rotation  float64 // Radians
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// SetPosition moves the body. Non-finite coordinates are ignored.
func (b *Body) SetPosition(x, y float64) {
	if !finite(x, y) {
		return
	}
	b.X, b.Y = x, y
}

// SetVelocity sets speed and direction. A negative speed is stored as the
// equivalent positive speed in the opposite direction.
func (b *Body) SetVelocity(speed, direction float64) {
	if !finite(speed, direction) {
		return
	}
	if speed < 0 {
		speed = -speed
		direction += math.Pi
	}
	b.Speed = speed
	b.Direction = direction
}

// SetRotation sets the facing. Non-finite angles are ignored.
func (b *Body) SetRotation(theta float64) {
	if !finite(theta) {
		return
	}
	b.Rotation = theta
}

// Rotate turns the body by delta radians.
func (b *Body) Rotate(delta float64) {
	b.SetRotation(core.NormalizeAngle(b.Rotation + delta))
}

// Position returns the body's location as a vector.
func (b *Body) Position() core.Vec2 {
	return core.V(b.X, b.Y)
}

// Velocity returns the per-tick displacement.
func (b *Body) Velocity() core.Vec2 {
	return core.Polar(b.Speed, b.Direction)
}

// Accelerate adds amount along the current rotation and clamps the resulting
// speed to limit.
func (b *Body) Accelerate(amount, limit float64) {
	v := b.Velocity().Add(core.Polar(amount, b.Rotation))
	speed := v.Len()
	dir := b.Direction
	if speed > 0 {
		dir = v.Angle()
	}
	if limit >= 0 && speed > limit {
		speed = limit
	}
	b.SetVelocity(speed, dir)
}

// ApplyFriction scales speed by (1 + amount). Amount is negative by
// convention; speed never drops below zero.
func (b *Body) ApplyFriction(amount float64) {
	if !finite(amount) {
		return
	}
	b.Speed = math.Max(0, b.Speed*(1+amount))
}

// Move advances the body one tick and wraps it into [0, size).
func (b *Body) Move(size float64) {
	v := b.Velocity()
	b.X = core.Wrap(b.X+v.X, size)
	b.Y = core.Wrap(b.Y+v.Y, size)
}

// Local converts an entity-local point to world coordinates.
func (b *Body) Local(pt core.Vec2) core.Vec2 {
	return pt.Rotate(b.Rotation).Add(b.Position())
}
