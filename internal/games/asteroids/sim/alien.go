package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Alien size tiers.
const (
	AlienSmall = 0
	AlienLarge = 1
)

// alienEntry is where a saucer appears: just off the left edge.
const alienEntry = -5

// NewAlien creates an alien of the given tier at rest.
func NewAlien(cfg config.AlienConfig, size int) (*Entity, error) {
	if size < 0 || size >= len(cfg.Scale) {
		return nil, fmt.Errorf("sim: alien size %d: %w", size, ErrInvalidSize)
	}
	return &Entity{
		kind:  KindAlien,
		shape: scaled(alienOutline, cfg.Scale[size]),
		Tier:  size,
	}, nil
}

// SpawnAlien adds a saucer at the left edge at a random height, heading in
// one of its six directions, and starts its engine sound.
func (w *World) SpawnAlien(size int) (*Entity, error) {
	e, err := NewAlien(w.Config.Alien, size)
	if err != nil {
		return nil, err
	}
	e.SetPosition(alienEntry, w.rng.Float64()*w.Size())
	w.Spawn(e)
	w.SteerAlien(e)
	w.Sound.Loop(saucerSound(size))
	return e, nil
}

// SteerAlien picks a new random heading for the saucer.
func (w *World) SteerAlien(e *Entity) {
	if !e.Alive() || e.kind != KindAlien {
		return
	}
	turn := w.Config.Alien.Turn
	headings := [...]float64{0, math.Pi, turn, -turn, math.Pi - turn, math.Pi + turn}
	e.Heading = headings[w.rng.Intn(len(headings))]
	e.SetVelocity(w.Config.Alien.Speed[e.Tier], e.Heading)
}

// DismissAlien removes a saucer without destroying it, silencing its engine.
func (w *World) DismissAlien(e *Entity) {
	if e == nil || e.kind != KindAlien {
		return
	}
	if w.Arena.Expire(e) {
		w.Sound.Stop(saucerSound(e.Tier))
	}
}

// AlienFire launches an alien bullet. With aim set the bullet heads for
// target, offset by up to the configured jitter; otherwise its heading is
// random.
func (w *World) AlienFire(alien, target *Entity, aim bool) *Entity {
	if !alien.Alive() || alien.kind != KindAlien {
		return nil
	}
	dir := w.randAngle()
	if aim && target.Alive() {
		dir = w.Delta(alien.Position(), target.Position()).Angle()
		if j := w.Config.Alien.AimJitterDegrees; j > 0 {
			dir += float64(w.rng.Intn(2*j+1)-j) * math.Pi / 180
		}
	}
	return w.spawnProjectile(KindAlienBullet, alien.Position(), w.Config.Bullet.Speed, dir, w.Config.Bullet.Duration)
}

func moveAlien(w *World, e *Entity) {
	e.SetVelocity(e.Speed, e.Heading)
	e.Move(w.Size())
}

func alienDestroyed(w *World, e *Entity, _ *Entity) {
	w.scatterDebris(e, 4, 2)
	w.Sound.Stop(saucerSound(e.Tier))
	w.Sound.Play(core.SoundBangAlien)
}

func saucerSound(size int) core.Sound {
	if size == AlienSmall {
		return core.SoundSaucerSmall
	}
	return core.SoundSaucerBig
}
