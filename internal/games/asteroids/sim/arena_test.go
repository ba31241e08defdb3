package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func TestArenaExpireIsIdempotent(t *testing.T) {
	a := NewArena()
	e := NewShip(core.V(10, 10), 0)
	h := a.Add(e)
	require.NotZero(t, h)

	assert.True(t, a.Expire(e))
	assert.False(t, a.Expire(e))
	assert.False(t, a.Remove(h))
	assert.False(t, a.Expire(nil))
	assert.False(t, a.Remove(0))
	assert.Nil(t, a.Get(h))
	assert.Equal(t, 0, a.CountKind(KindShip))
}

func TestArenaDoesNotReviveExpired(t *testing.T) {
	a := NewArena()
	e := NewShip(core.V(10, 10), 0)
	h := a.Add(e)
	a.Expire(e)
	a.Compact()

	assert.Zero(t, a.Add(e))
	assert.True(t, e.Expired())
	assert.Nil(t, a.Get(h))
	assert.Equal(t, 0, a.Len())
}

func TestArenaHandlesAreStable(t *testing.T) {
	a := NewArena()
	first := a.Add(NewShip(core.V(0, 0), 0))
	second := a.Add(NewShip(core.V(1, 1), 0))
	a.Remove(first)
	a.Compact()
	third := a.Add(NewShip(core.V(2, 2), 0))

	assert.NotEqual(t, first, third)
	require.NotNil(t, a.Get(second))
	assert.Equal(t, 1.0, a.Get(second).X)
}

func TestMoveParticipantsSkipsNewcomers(t *testing.T) {
	a := NewArena()
	a.Add(NewShip(core.V(0, 0), 0))
	a.Add(NewShip(core.V(1, 0), 0))

	moved := 0
	a.MoveParticipants(func(e *Entity) {
		moved++
		a.Add(NewShip(core.V(5, 5), 0))
	})
	assert.Equal(t, 2, moved)
	assert.Equal(t, 4, a.Len())
}

func TestMoveParticipantsSkipsEntitiesExpiredMidPass(t *testing.T) {
	a := NewArena()
	first := NewShip(core.V(0, 0), 0)
	second := NewShip(core.V(1, 0), 0)
	a.Add(first)
	a.Add(second)

	var seen []*Entity
	a.MoveParticipants(func(e *Entity) {
		seen = append(seen, e)
		a.Expire(second)
	})
	assert.Equal(t, []*Entity{first}, seen)
}

func TestArenaIterationIsRestartable(t *testing.T) {
	a := NewArena()
	for i := range 3 {
		a.Add(NewShip(core.V(float64(i), 0), 0))
	}
	count := func() int {
		n := 0
		for range a.All() {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())

	for e := range a.All() {
		a.Expire(e)
		break
	}
	assert.Equal(t, 2, count())
}

func TestArenaCounts(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(100, 100), 0)
	for range 3 {
		require.NotNil(t, w.FireBullet(ship))
	}
	_, err := w.SpawnAsteroid(2, 0, core.V(500, 500), 0)
	require.NoError(t, err)

	assert.Equal(t, 3, w.Arena.CountBullets())
	assert.Equal(t, 1, w.Arena.CountAsteroids())
	assert.Equal(t, 5, w.Arena.Len())
	assert.Equal(t, 4, w.Arena.Count(func(e *Entity) bool { return e.Kind() != KindAsteroid }))

	w.Arena.Clear()
	assert.Equal(t, 0, w.Arena.Len())
	assert.Equal(t, 0, w.Arena.CountBullets())
}

func TestCountdownDiscardedAfterExpiry(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(100, 100), 0)
	b := w.FireBullet(ship)
	require.NotNil(t, b)

	w.Arena.Expire(b)
	w.Clock.Advance(2 * time.Second)
	assert.NotPanics(t, func() { w.FireCountdowns() })
	assert.Equal(t, 0, w.Timers.Pending())
	assert.True(t, b.Expired())
}
