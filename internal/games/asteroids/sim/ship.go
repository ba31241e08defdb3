package sim

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// NewShip creates a ship at the given point facing rotation. It is not yet
// part of any world.
func NewShip(at core.Vec2, rotation float64) *Entity {
	e := &Entity{kind: KindShip, shape: shipOutline, flame: shipFlame}
	e.SetPosition(at.X, at.Y)
	e.SetRotation(rotation)
	return e
}

// SpawnShip adds a ship to the world and arms its scripted thrust bursts
// when configured.
func (w *World) SpawnShip(at core.Vec2, rotation float64) *Entity {
	e := w.Spawn(NewShip(at, rotation))
	if d := w.Config.Ship.AutoThrustInterval; d > 0 {
		w.After(e, TagThrustBurst, d)
	}
	return e
}

func moveShip(w *World, e *Entity) {
	cfg := w.Config.Ship
	if e.TurningRight {
		e.Rotate(cfg.TurnRate())
	}
	if e.TurningLeft {
		e.Rotate(-cfg.TurnRate())
	}
	if e.Thrusting {
		e.Accelerate(cfg.Acceleration, cfg.SpeedLimit)
	}
	e.ApplyFriction(cfg.Friction)
	e.Move(w.Size())
}

func shipCountdown(w *World, e *Entity, tag Tag) {
	if tag != TagThrustBurst {
		return
	}
	e.Accelerate(w.Config.Ship.Acceleration, w.Config.Ship.SpeedLimit)
	w.After(e, TagThrustBurst, w.Config.Ship.AutoThrustInterval)
}

func shipDestroyed(w *World, e *Entity, _ *Entity) {
	w.scatterDebris(e, 2, 1)
	w.Sound.Stop(core.SoundThrust)
	w.Sound.Play(core.SoundBangShip)
}

// scatterDebris throws long and short hull fragments from e.
func (w *World) scatterDebris(e *Entity, long, short int) {
	for i := 0; i < long+short; i++ {
		shape := debrisLong
		if i >= long {
			shape = debrisShort
		}
		w.spawnDebris(e.Position(), e.Rotation+w.randAngle(), shape, w.Config.Debris.ShipDuration)
	}
}

// FireBullet launches a bullet from the ship's nose along its rotation.
// It returns nil when the live bullet limit is reached.
func (w *World) FireBullet(ship *Entity) *Entity {
	if !ship.Alive() || ship.kind != KindShip {
		return nil
	}
	if w.Arena.CountBullets() >= w.Config.Bullet.Limit {
		return nil
	}
	b := w.spawnProjectile(KindBullet, ship.Nose(), w.Config.Bullet.Speed, ship.Rotation, w.Config.Bullet.Duration)
	w.Sound.Play(core.SoundFire)
	return b
}

// FireMissile launches a homing missile from the ship's nose. It returns nil
// when missiles are disabled or the missile limit is reached.
func (w *World) FireMissile(ship *Entity) *Entity {
	cfg := w.Config.Missile
	if !cfg.Enabled || !ship.Alive() || ship.kind != KindShip {
		return nil
	}
	if w.Arena.CountKind(KindMissile) >= cfg.Limit {
		return nil
	}
	m := &Entity{kind: KindMissile, shape: missileOutline, flame: missileFlame}
	at := ship.Nose()
	m.SetPosition(at.X, at.Y)
	m.SetRotation(ship.Rotation)
	m.SetVelocity(cfg.Speed, ship.Rotation)
	w.Spawn(m)
	w.After(m, TagExpire, cfg.Duration)
	w.Sound.Play(core.SoundMissile)
	return m
}

func (w *World) spawnProjectile(k Kind, at core.Vec2, speed, direction float64, life time.Duration) *Entity {
	e := &Entity{kind: k, shape: bulletOutline}
	e.SetPosition(at.X, at.Y)
	e.SetRotation(direction)
	e.SetVelocity(speed, direction)
	w.Spawn(e)
	w.After(e, TagExpire, life)
	return e
}
