// Package sim is the asteroids simulation core: toroidal motion, the entity
// registry, shape-based collisions, deferred timers and the behavior of every
// entity kind. It has no knowledge of rendering, audio devices or input
// hardware; those reach it through core.SoundPlayer and the Listener.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Listener receives destruction notices. by is the entity whose capability
// caused the destruction.
type Listener interface {
	EntityDestroyed(e, by *Entity)
}

// World is the simulation context threaded through every behavior: the
// configuration, the random source, the registry and the timers.
type World struct {
	Config config.AsteroidsConfig
	Arena  *Arena
	Timers Timers
	Clock  Clock

	Sound    core.SoundPlayer
	Listener Listener

	// SpeedFactor scales asteroid speeds. The game updates it as difficulty rises.
	SpeedFactor float64

	rng       *rand.Rand
	behaviors [kindCount]behavior
}

// NewWorld creates an empty world seeded with seed.
func NewWorld(cfg config.AsteroidsConfig, seed int64) *World {
	return &World{
		Config:      cfg,
		Arena:       NewArena(),
		Sound:       core.NopSound{},
		SpeedFactor: 1,
		rng:         rand.New(rand.NewSource(seed)),
		behaviors:   defaultBehaviors(),
	}
}

// Rand returns the world's random source.
func (w *World) Rand() *rand.Rand { return w.rng }

// Size returns the side length of the toroidal field.
func (w *World) Size() float64 { return w.Config.World.Size }

// Now returns current simulated time.
func (w *World) Now() time.Duration { return w.Clock.Now() }

// Destroys reports whether kind a destroys kind b on contact.
func (w *World) Destroys(a, b Kind) bool {
	return w.behaviors[a].destroys.Has(b)
}

// GrantDestroys extends kind a's capability set with b.
func (w *World) GrantDestroys(a, b Kind) {
	w.behaviors[a].destroys = w.behaviors[a].destroys.With(b)
	if a == KindBullet {
		w.behaviors[a].spentOn = w.behaviors[a].spentOn.With(b)
	}
}

// Spawn wraps e into the field and adds it to the arena.
func (w *World) Spawn(e *Entity) *Entity {
	e.SetPosition(core.Wrap(e.X, w.Size()), core.Wrap(e.Y, w.Size()))
	w.Arena.Add(e)
	return e
}

// After schedules a countdown for e.
func (w *World) After(e *Entity, tag Tag, d time.Duration) {
	w.Timers.After(w.Now(), e.Handle(), tag, d)
}

// FireCountdowns delivers every due countdown to its entity. Countdowns
// whose entity has already expired are discarded.
func (w *World) FireCountdowns() int {
	fired := 0
	for _, c := range w.Timers.Due(w.Now()) {
		e := w.Arena.Get(c.Entity)
		if e == nil {
			continue
		}
		if fn := w.behaviors[e.kind].countdown; fn != nil {
			fn(w, e, c.Tag)
			fired++
		}
	}
	return fired
}

// MoveAll advances every live entity by one tick.
func (w *World) MoveAll() {
	w.Arena.MoveParticipants(func(e *Entity) {
		if fn := w.behaviors[e.kind].move; fn != nil {
			fn(w, e)
		}
	})
}

// hit reports whether contact with other ends self.
func (w *World) hit(self, other *Entity) bool {
	return w.behaviors[other.kind].destroys.Has(self.kind) ||
		w.behaviors[self.kind].spentOn.Has(other.kind)
}

// Collide tests every unordered pair of live entities once and resolves each
// hit on both parties. It returns the number of intersecting pairs resolved.
func (w *World) Collide() int {
	var parts []*Entity
	for e := range w.Arena.All() {
		if e.kind != KindDebris {
			parts = append(parts, e)
		}
	}
	outlines := make([]core.Shape, len(parts))
	outline := func(i int) core.Shape {
		if outlines[i] == nil {
			outlines[i] = parts[i].CollisionOutline()
		}
		return outlines[i]
	}

	resolved := 0
	for i := 0; i < len(parts); i++ {
		for j := i + 1; j < len(parts); j++ {
			a, b := parts[i], parts[j]
			if a.expired {
				break
			}
			if b.expired {
				continue
			}
			hitA, hitB := w.hit(a, b), w.hit(b, a)
			if !hitA && !hitB {
				continue
			}
			if !outline(i).Intersects(outline(j)) {
				continue
			}
			resolved++
			if hitA {
				w.resolve(a, b)
			}
			if hitB {
				w.resolve(b, a)
			}
		}
	}
	return resolved
}

// resolve ends e after contact with by. Only a destroying contact runs the
// destruction behavior; projectiles that are merely spent just expire.
func (w *World) resolve(e, by *Entity) {
	if w.Destroys(by.kind, e.kind) {
		w.Destroy(e, by)
		return
	}
	w.Arena.Expire(e)
}

// Destroy expires e and, the first time only, runs its destruction
// behavior and notifies the listener.
func (w *World) Destroy(e, by *Entity) bool {
	if !w.Arena.Expire(e) {
		return false
	}
	if fn := w.behaviors[e.kind].destroyed; fn != nil {
		fn(w, e, by)
	}
	if w.Listener != nil {
		w.Listener.EntityDestroyed(e, by)
	}
	return true
}

// Step runs one tick of entity simulation: countdowns, motion, collisions,
// then compaction. The clock must already have been advanced.
func (w *World) Step() {
	w.FireCountdowns()
	w.MoveAll()
	w.Collide()
	w.Arena.Compact()
}

// Reset empties the arena and drops pending countdowns.
func (w *World) Reset() {
	w.Arena.Clear()
	w.Timers.Reset()
}

// Nearest returns the live entity of kind k closest to from across the
// torus, or nil.
func (w *World) Nearest(from core.Vec2, k Kind) *Entity {
	var best *Entity
	bestDist := 0.0
	for e := range w.Arena.All() {
		if e.kind != k {
			continue
		}
		d := w.Delta(from, e.Position()).Len()
		if best == nil || d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

// Delta returns the shortest displacement from a to b on the torus.
func (w *World) Delta(a, b core.Vec2) core.Vec2 {
	return core.V(core.WrapDelta(a.X, b.X, w.Size()), core.WrapDelta(a.Y, b.Y, w.Size()))
}

func (w *World) randAngle() float64 {
	return w.rng.Float64() * 2 * math.Pi
}

func (w *World) randDuration(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(w.rng.Int63n(int64(hi-lo)))
}
