package sim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type destroyedEvent struct {
	kind, by Kind
}

type recordingListener struct {
	events []destroyedEvent
}

func (l *recordingListener) EntityDestroyed(e, by *Entity) {
	l.events = append(l.events, destroyedEvent{e.Kind(), by.Kind()})
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.DefaultAsteroidsConfig(), 42)
}

func spawnStill(t *testing.T, w *World, size int, at core.Vec2) *Entity {
	t.Helper()
	e, err := w.SpawnAsteroid(size, 2, at, 0)
	require.NoError(t, err)
	return e
}

func TestBulletDestroysAsteroidOnce(t *testing.T) {
	w := newTestWorld(t)
	l := &recordingListener{}
	sounds := &core.SoundRecorder{}
	w.Listener, w.Sound = l, sounds

	rock := spawnStill(t, w, config.SizeMedium, core.V(300, 300))
	first := w.spawnProjectile(KindBullet, core.V(300, 300), 0, 0, time.Second)
	second := w.spawnProjectile(KindBullet, core.V(302, 300), 0, 0, time.Second)

	w.Collide()

	assert.True(t, rock.Expired())
	assert.True(t, first.Expired(), "the bullet that hit is spent")
	assert.False(t, second.Expired(), "a later hit on an expired asteroid is a no-op")
	assert.Equal(t, []destroyedEvent{{KindAsteroid, KindBullet}}, l.events)
	assert.Equal(t, 1, sounds.Count(core.SoundBangMedium))
	assert.Equal(t, w.Config.Asteroid.Specks, w.Arena.CountKind(KindDebris))

	w.Collide()
	assert.Len(t, l.events, 1)
}

func TestDestroyIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	l := &recordingListener{}
	w.Listener = l
	ship := w.SpawnShip(core.V(100, 100), 0)
	rock := spawnStill(t, w, config.SizeLarge, core.V(600, 600))

	assert.True(t, w.Destroy(rock, ship))
	debris := w.Arena.CountKind(KindDebris)
	assert.False(t, w.Destroy(rock, ship))
	assert.Equal(t, debris, w.Arena.CountKind(KindDebris))
	assert.Len(t, l.events, 1)
}

func TestShipAndAsteroidDestroyEachOther(t *testing.T) {
	w := newTestWorld(t)
	l := &recordingListener{}
	w.Listener = l

	ship := w.SpawnShip(core.V(200, 200), 0)
	rock := spawnStill(t, w, config.SizeLarge, core.V(205, 200))

	w.Collide()

	assert.True(t, ship.Expired())
	assert.True(t, rock.Expired())
	assert.ElementsMatch(t, []destroyedEvent{{KindShip, KindAsteroid}, {KindAsteroid, KindShip}}, l.events)
	assert.Equal(t, 3+w.Config.Asteroid.Specks, w.Arena.CountKind(KindDebris))
}

func TestSameKindDoesNotCollide(t *testing.T) {
	w := newTestWorld(t)
	a := spawnStill(t, w, config.SizeLarge, core.V(100, 100))
	b := spawnStill(t, w, config.SizeLarge, core.V(110, 100))

	assert.Equal(t, 0, w.Collide())
	assert.False(t, a.Expired())
	assert.False(t, b.Expired())
}

func TestNoCollisionWhenApart(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(100, 100), 0)
	rock := spawnStill(t, w, config.SizeSmall, core.V(400, 400))

	assert.Equal(t, 0, w.Collide())
	assert.True(t, ship.Alive())
	assert.True(t, rock.Alive())
}

func TestClassicBulletPassesThroughAlien(t *testing.T) {
	w := newTestWorld(t)
	alien, err := w.SpawnAlien(AlienLarge)
	require.NoError(t, err)
	alien.SetPosition(300, 300)
	b := w.spawnProjectile(KindBullet, core.V(300, 302), 0, 0, time.Second)

	w.Collide()
	assert.True(t, alien.Alive())
	assert.True(t, b.Alive())

	w.GrantDestroys(KindBullet, KindAlien)
	w.Collide()
	assert.True(t, alien.Expired())
	assert.True(t, b.Expired())
	assert.Equal(t, 6, w.Arena.CountKind(KindDebris))
}

func TestAlienBulletSpentOnAsteroid(t *testing.T) {
	w := newTestWorld(t)
	l := &recordingListener{}
	w.Listener = l
	rock := spawnStill(t, w, config.SizeMedium, core.V(300, 300))
	b := w.spawnProjectile(KindAlienBullet, core.V(300, 300), 0, 0, time.Second)

	w.Collide()
	assert.True(t, rock.Expired())
	assert.True(t, b.Expired())
	assert.Equal(t, []destroyedEvent{{KindAsteroid, KindAlienBullet}}, l.events)
}

func TestBulletCap(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(375, 375), 0)
	limit := w.Config.Bullet.Limit

	for range limit {
		require.NotNil(t, w.FireBullet(ship))
	}
	assert.Nil(t, w.FireBullet(ship))
	assert.Equal(t, limit, w.Arena.CountBullets())

	for e := range w.Arena.All() {
		if e.Kind() == KindBullet {
			w.Arena.Expire(e)
			break
		}
	}
	assert.NotNil(t, w.FireBullet(ship))
	assert.Nil(t, w.FireBullet(ship))
}

func TestBulletExpiresAfterDuration(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(375, 375), 0)
	b := w.FireBullet(ship)
	require.NotNil(t, b)

	tick := w.Config.Timing.TickInterval
	for w.Now() < w.Config.Bullet.Duration-tick {
		w.Clock.Advance(tick)
		w.Step()
	}
	assert.True(t, b.Alive())

	w.Clock.Advance(tick)
	w.Step()
	assert.True(t, b.Expired())
}

func TestBulletLeavesFromNose(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(375, 375), -math.Pi/2)
	b := w.FireBullet(ship)
	require.NotNil(t, b)
	assert.InDelta(t, 375, b.X, 1e-9)
	assert.InDelta(t, 355, b.Y, 1e-9)
	assert.Equal(t, w.Config.Bullet.Speed, b.Speed)
}

func TestInvalidAsteroidRejected(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig().Asteroid
	tests := []struct {
		name          string
		size, variety int
		err           error
	}{
		{"negative size", -1, 0, ErrInvalidSize},
		{"size too large", 3, 0, ErrInvalidSize},
		{"negative variety", 0, -1, ErrInvalidVariety},
		{"variety too large", 0, AsteroidVarieties, ErrInvalidVariety},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewAsteroid(cfg, tc.size, tc.variety)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := NewAlien(config.DefaultAsteroidsConfig().Alien, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestAsteroidSpeedCappedByTier(t *testing.T) {
	w := newTestWorld(t)
	for size := range 3 {
		e, err := w.SpawnAsteroid(size, 0, core.V(10, 10), 100)
		require.NoError(t, err)
		assert.Equal(t, w.Config.Asteroid.MaxSpeed[size], e.Speed)

		r, err := w.RandomAsteroid(size, core.V(10, 10))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r.Speed, w.Config.Asteroid.MaxSpeed[size]/2)
		assert.LessOrEqual(t, r.Speed, w.Config.Asteroid.MaxSpeed[size])
	}
}

func TestSplitSpawnsSmallerAsteroids(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Asteroid.Split = true
	w := NewWorld(cfg, 7)
	ship := w.SpawnShip(core.V(10, 10), 0)
	rock := spawnStill(t, w, config.SizeLarge, core.V(400, 400))

	w.Destroy(rock, ship)
	assert.Equal(t, 2, w.Arena.CountAsteroids())
	for e := range w.Arena.All() {
		if e.Kind() == KindAsteroid {
			assert.Equal(t, config.SizeMedium, e.Tier)
		}
	}

	small := spawnStill(t, w, config.SizeSmall, core.V(100, 600))
	w.Destroy(small, ship)
	assert.Equal(t, 2, w.Arena.CountAsteroids(), "small asteroids do not split")
}

func TestVisualFrameDoesNotChangeCollision(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(300, 300), 0.3)
	ship.Thrusting = true

	base := ship.CollisionOutline()
	assert.Len(t, ship.VisualOutline(0), len(base))
	assert.Len(t, ship.VisualOutline(1), len(base)+1, "flame shows on alternate frames")
	assert.Equal(t, base, ship.CollisionOutline())

	ship.Thrusting = false
	assert.Len(t, ship.VisualOutline(1), len(base))
}

func TestShipControls(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(300, 300), 0)

	ship.TurningRight = true
	w.MoveAll()
	assert.InDelta(t, math.Pi/16, ship.Rotation, 1e-9)

	ship.TurningRight = false
	ship.Thrusting = true
	for range 100 {
		w.MoveAll()
		assert.LessOrEqual(t, ship.Speed, w.Config.Ship.SpeedLimit)
	}
	assert.Greater(t, ship.Speed, 0.0)

	ship.Thrusting = false
	for range 1000 {
		w.MoveAll()
	}
	assert.Less(t, ship.Speed, 1e-6)
}

func TestAutoThrustRearms(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Ship.AutoThrustInterval = 200 * time.Millisecond
	cfg.Ship.Friction = 0
	w := NewWorld(cfg, 1)
	ship := w.SpawnShip(core.V(300, 300), 0)

	for range 3 {
		w.Clock.Advance(200 * time.Millisecond)
		w.FireCountdowns()
	}
	assert.InDelta(t, 3*cfg.Ship.Acceleration, ship.Speed, 1e-9)
	assert.Equal(t, 1, w.Timers.Pending())
}

func TestMissileTurnsTowardTargetWithinRate(t *testing.T) {
	cfg := config.EnhancedAsteroidsConfig(config.DefaultAsteroidsConfig())
	w := NewWorld(cfg, 3)
	ship := w.SpawnShip(core.V(100, 100), 0)
	m := w.FireMissile(ship)
	require.NotNil(t, m)
	spawnStill(t, w, config.SizeLarge, core.V(120, 300))

	rate := cfg.Missile.TurnRate()
	prev := m.Rotation
	for range 10 {
		w.MoveAll()
		assert.LessOrEqual(t, math.Abs(core.NormalizeAngle(m.Rotation-prev)), rate+1e-9)
		assert.LessOrEqual(t, m.Speed, cfg.Missile.SpeedLimit)
		prev = m.Rotation
	}
	assert.Greater(t, m.Rotation, 0.0, "turned toward the asteroid below")
	assert.NotZero(t, m.Target)

	for range cfg.Missile.Limit {
		w.FireMissile(ship)
	}
	assert.Equal(t, cfg.Missile.Limit, w.Arena.CountKind(KindMissile))
}

func TestMissilesDisabledInClassicMode(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(100, 100), 0)
	assert.Nil(t, w.FireMissile(ship))
}

func TestAlienFireAimsAtTarget(t *testing.T) {
	cfg := config.DefaultAsteroidsConfig()
	cfg.Alien.AimJitterDegrees = 0
	w := NewWorld(cfg, 9)
	alien, err := w.SpawnAlien(AlienSmall)
	require.NoError(t, err)
	alien.SetPosition(100, 100)
	ship := w.SpawnShip(core.V(100, 400), 0)

	b := w.AlienFire(alien, ship, true)
	require.NotNil(t, b)
	assert.InDelta(t, math.Pi/2, b.Direction, 1e-9)
	assert.Equal(t, KindAlienBullet, b.Kind())
}

func TestAlienSoundLifecycle(t *testing.T) {
	w := newTestWorld(t)
	sounds := &core.SoundRecorder{}
	w.Sound = sounds

	alien, err := w.SpawnAlien(AlienLarge)
	require.NoError(t, err)
	assert.Equal(t, core.SoundEvent{Sound: core.SoundSaucerBig, Op: core.SoundOpLoop}, sounds.Events[0])
	assert.Contains(t, []float64{0, math.Pi, 1, -1, math.Pi - 1, math.Pi + 1}, alien.Heading)

	w.DismissAlien(alien)
	w.DismissAlien(alien)
	assert.Equal(t, []core.SoundEvent{
		{Sound: core.SoundSaucerBig, Op: core.SoundOpLoop},
		{Sound: core.SoundSaucerBig, Op: core.SoundOpStop},
	}, sounds.Events)
}

func TestDebrisIsInert(t *testing.T) {
	w := newTestWorld(t)
	ship := w.SpawnShip(core.V(300, 300), 0)
	w.scatterDebris(ship, 2, 1)

	assert.Equal(t, 0, w.Collide())
	assert.True(t, ship.Alive())
	for e := range w.Arena.All() {
		if e.Kind() == KindDebris {
			assert.Less(t, e.Speed, float64(w.Config.Debris.MaxSpeed))
		}
	}

	w.Clock.Advance(w.Config.Debris.ShipDuration)
	w.FireCountdowns()
	assert.Equal(t, 0, w.Arena.CountKind(KindDebris))
}

func TestWorldDeterminism(t *testing.T) {
	run := func() []core.Vec2 {
		w := NewWorld(config.DefaultAsteroidsConfig(), 1234)
		for range 6 {
			_, err := w.RandomAsteroid(config.SizeLarge, core.V(0, 0))
			require.NoError(t, err)
		}
		for range 90 {
			w.Clock.Advance(w.Config.Timing.TickInterval)
			w.Step()
		}
		var out []core.Vec2
		for e := range w.Arena.All() {
			out = append(out, e.Position())
		}
		return out
	}
	assert.Equal(t, run(), run())
}
