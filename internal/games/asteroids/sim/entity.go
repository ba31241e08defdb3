package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Handle identifies an entity for as long as the world exists.
// The zero Handle refers to nothing.
type Handle uint64

// Tag is the payload delivered when a countdown fires.
type Tag string

// Countdown tags understood by the built-in behaviors.
const (
	TagExpire      Tag = "expire"
	TagThrustBurst Tag = "thrust-burst"
)

// Entity is one simulated participant: a tagged variant over Kind carrying
// its motion, its collision outline and the per-kind state below.
// Only the Arena creates and owns entities.
type Entity struct {
	Body

	kind    Kind
	id      Handle
	expired bool

	shape core.Shape // collision outline, local coordinates, pre-scaled
	flame core.Shape // extra visual frame drawn on alternate frames

	// Tier is the size index for asteroids and aliens.
	Tier int
	// Variety selects the asteroid outline.
	Variety int

	// Ship controls. Valid for KindShip.
	TurningLeft, TurningRight, Thrusting bool

	// Heading is the alien's current travel direction. Valid for KindAlien.
	Heading float64

	// Target is the missile's current quarry. Valid for KindMissile.
	Target Handle
}

// Kind returns the entity's variant.
func (e *Entity) Kind() Kind { return e.kind }

// Handle returns the entity's stable identifier.
func (e *Entity) Handle() Handle {
	if e == nil {
		return 0
	}
	return e.id
}

// Expired reports whether the entity has left the simulation.
func (e *Entity) Expired() bool { return e.expired }

// Alive reports whether e is non-nil and not expired.
func (e *Entity) Alive() bool { return e != nil && !e.expired }

// CollisionOutline returns the world-space collision shape. It depends only
// on position and rotation, never on animation state.
func (e *Entity) CollisionOutline() core.Shape {
	return e.shape.Transform(1, e.Rotation, e.Position())
}

// VisualOutline returns the world-space shape to draw on the given frame.
// Ships and missiles add their exhaust flame on odd frames while under power.
func (e *Entity) VisualOutline(frame uint64) core.Shape {
	out := e.CollisionOutline()
	if e.flame != nil && frame%2 == 1 && e.poweredVisual() {
		out = append(out, e.flame.Transform(1, e.Rotation, e.Position())...)
	}
	return out
}

func (e *Entity) poweredVisual() bool {
	switch e.kind {
	case KindShip:
		return e.Thrusting
	case KindMissile:
		return true
	}
	return false
}

// Nose returns the world-space muzzle point of a ship.
func (e *Entity) Nose() core.Vec2 {
	return e.Local(shipNose)
}

// behavior is the per-kind record the world dispatches through.
type behavior struct {
	// destroys is the capability tag: kinds this kind destroys on contact.
	destroys KindSet
	// spentOn lists kinds whose contact expires this kind even though they
	// do not destroy it (projectiles used up on impact).
	spentOn KindSet

	move      func(w *World, e *Entity)
	destroyed func(w *World, e *Entity, by *Entity)
	countdown func(w *World, e *Entity, tag Tag)
}

func defaultBehaviors() [kindCount]behavior {
	return [kindCount]behavior{
		KindShip: {
			destroys:  Kinds(KindAsteroid, KindAlien),
			move:      moveShip,
			destroyed: shipDestroyed,
			countdown: shipCountdown,
		},
		KindAsteroid: {
			destroys:  Kinds(KindShip),
			move:      moveDrift,
			destroyed: asteroidDestroyed,
		},
		KindAlien: {
			destroys:  Kinds(KindShip, KindAsteroid),
			move:      moveAlien,
			destroyed: alienDestroyed,
		},
		KindBullet: {
			destroys:  Kinds(KindAsteroid),
			spentOn:   Kinds(KindAsteroid),
			move:      moveDrift,
			countdown: expireOnTimeout,
		},
		KindAlienBullet: {
			destroys:  Kinds(KindShip, KindAsteroid),
			spentOn:   Kinds(KindShip, KindAsteroid),
			move:      moveDrift,
			countdown: expireOnTimeout,
		},
		KindMissile: {
			destroys:  Kinds(KindAlien, KindAsteroid),
			spentOn:   Kinds(KindAlien, KindAsteroid),
			move:      moveMissile,
			countdown: expireOnTimeout,
		},
		KindDebris: {
			move:      moveDrift,
			countdown: expireOnTimeout,
		},
	}
}

// moveDrift is the base motion: straight travel with wraparound.
func moveDrift(w *World, e *Entity) {
	e.Move(w.Size())
}

func expireOnTimeout(w *World, e *Entity, tag Tag) {
	if tag == TagExpire {
		w.Arena.Expire(e)
	}
}
