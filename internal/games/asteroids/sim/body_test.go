package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveWrapsIntoField(t *testing.T) {
	const size = 750.0
	tests := []struct {
		name      string
		x, y      float64
		speed     float64
		direction float64
	}{
		{"right edge", size - 0.001, 100, 5, 0},
		{"left edge", 0.5, 100, 5, math.Pi},
		{"top edge", 300, 1, 15, -math.Pi / 2},
		{"bottom edge", 300, size - 1, 15, math.Pi / 2},
		{"corner", size - 2, size - 2, 15, math.Pi / 4},
		{"at rest", 10, 10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var b Body
			b.SetPosition(tc.x, tc.y)
			b.SetVelocity(tc.speed, tc.direction)
			for range 200 {
				b.Move(size)
				assert.GreaterOrEqual(t, b.X, 0.0)
				assert.Less(t, b.X, size)
				assert.GreaterOrEqual(t, b.Y, 0.0)
				assert.Less(t, b.Y, size)
			}
		})
	}
}

func TestMoveAcrossEdgeLandsNearZero(t *testing.T) {
	var b Body
	b.SetPosition(749.9, 10)
	b.SetVelocity(1, 0)
	b.Move(750)
	assert.InDelta(t, 0.9, b.X, 1e-9)
	assert.InDelta(t, 10, b.Y, 1e-9)
}

func TestAccelerateNeverExceedsLimit(t *testing.T) {
	directions := []float64{0, math.Pi / 3, math.Pi, -2.5, 7}
	for _, start := range directions {
		var b Body
		b.SetVelocity(14, start)
		for i := range 100 {
			b.SetRotation(float64(i) * 0.37)
			b.Accelerate(0.65, 15)
			assert.LessOrEqual(t, b.Speed, 15.0+1e-9)
		}
		b.Accelerate(1000, 15)
		assert.InDelta(t, 15, b.Speed, 1e-9)
	}
}

func TestAccelerateAddsAlongRotation(t *testing.T) {
	var b Body
	b.SetVelocity(3, 0)
	b.SetRotation(math.Pi / 2)
	b.Accelerate(4, 100)
	assert.InDelta(t, 5, b.Speed, 1e-9)
	assert.InDelta(t, math.Atan2(4, 3), b.Direction, 1e-9)
	assert.InDelta(t, math.Pi/2, b.Rotation, 1e-9, "rotation is independent of velocity")
}

func TestFrictionFloorsAtZero(t *testing.T) {
	var b Body
	b.SetVelocity(15, 1)
	prev := b.Speed
	for range 1000 {
		b.ApplyFriction(-0.05)
		assert.GreaterOrEqual(t, b.Speed, 0.0)
		assert.LessOrEqual(t, b.Speed, prev)
		prev = b.Speed
	}
	assert.Less(t, b.Speed, 1e-9)

	b.SetVelocity(2, 0)
	b.ApplyFriction(-3)
	assert.Equal(t, 0.0, b.Speed, "overshooting friction stops, never reverses")
}

func TestSettersRejectNonFinite(t *testing.T) {
	var b Body
	b.SetPosition(1, 2)
	b.SetPosition(math.NaN(), 5)
	b.SetVelocity(math.Inf(1), 0)
	b.SetRotation(math.NaN())
	assert.Equal(t, Body{X: 1, Y: 2}, b)
}

func TestNegativeSpeedFlipsDirection(t *testing.T) {
	var b Body
	b.SetVelocity(-2, 0)
	assert.Equal(t, 2.0, b.Speed)
	assert.InDelta(t, math.Pi, b.Direction, 1e-9)
}
