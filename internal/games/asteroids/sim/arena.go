package sim

import "iter"

// Arena owns every entity. Expiry only flags an entity; the slot is
// reclaimed by Compact between ticks so iteration in progress never sees a
// structural change.
type Arena struct {
	entities []*Entity
	byID     map[Handle]*Entity
	live     [kindCount]int
	nextID   Handle
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{byID: make(map[Handle]*Entity)}
}

// Add assigns e a handle and appends it to the live set. Expired entities
// stay expired and get no handle.
func (a *Arena) Add(e *Entity) Handle {
	if e == nil || e.expired {
		return 0
	}
	if e.id != 0 {
		if _, ok := a.byID[e.id]; ok {
			return e.id
		}
	}
	a.nextID++
	e.id = a.nextID
	a.entities = append(a.entities, e)
	a.byID[e.id] = e
	a.live[e.kind]++
	return e.id
}

// Expire marks e removed and reports whether it was live until now.
// Nil and already-expired entities are ignored.
func (a *Arena) Expire(e *Entity) bool {
	if e == nil || e.expired {
		return false
	}
	if a.byID[e.id] != e {
		return false
	}
	e.expired = true
	a.live[e.kind]--
	return true
}

// Remove expires the entity with handle h, if any.
func (a *Arena) Remove(h Handle) bool {
	return a.Expire(a.byID[h])
}

// Get returns the live entity with handle h, or nil.
func (a *Arena) Get(h Handle) *Entity {
	e := a.byID[h]
	if e == nil || e.expired {
		return nil
	}
	return e
}

// MoveParticipants calls fn once for every entity live at the start of the
// pass. Entities added by fn are left for the next tick.
func (a *Arena) MoveParticipants(fn func(*Entity)) {
	n := len(a.entities)
	for i := 0; i < n; i++ {
		if e := a.entities[i]; !e.expired {
			fn(e)
		}
	}
}

// All yields live entities in registry order. Each call starts afresh.
func (a *Arena) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		n := len(a.entities)
		for i := 0; i < n; i++ {
			e := a.entities[i]
			if e.expired {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Count returns the number of live entities matching pred.
func (a *Arena) Count(pred func(*Entity) bool) int {
	n := 0
	for e := range a.All() {
		if pred(e) {
			n++
		}
	}
	return n
}

// CountKind returns the number of live entities of kind k.
func (a *Arena) CountKind(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return a.live[k]
}

// CountBullets returns the number of live player bullets.
func (a *Arena) CountBullets() int { return a.live[KindBullet] }

// CountAsteroids returns the number of live asteroids.
func (a *Arena) CountAsteroids() int { return a.live[KindAsteroid] }

// Len returns the number of live entities.
func (a *Arena) Len() int {
	n := 0
	for _, c := range a.live {
		n += c
	}
	return n
}

// Compact drops expired entities from storage.
func (a *Arena) Compact() {
	kept := a.entities[:0]
	for _, e := range a.entities {
		if e.expired {
			delete(a.byID, e.id)
			continue
		}
		kept = append(kept, e)
	}
	clear(a.entities[len(kept):])
	a.entities = kept
}

// Clear expires every entity and compacts.
func (a *Arena) Clear() {
	for _, e := range a.entities {
		a.Expire(e)
	}
	a.Compact()
}
