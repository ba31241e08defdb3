package asteroids

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// EntitySnapshot is the observable state of one entity.
type EntitySnapshot struct {
	Kind     sim.Kind
	X, Y     float64
	Speed    float64
	Rotation float64
	Tier     int
}

// Snapshot contains the observable game state for determinism checks.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	Lives    int
	Level    int
	Entities []EntitySnapshot
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: g.session.Phase,
		Score: g.session.Score,
		Lives: g.session.Lives,
		Level: g.session.Level,
	}
	if g.world == nil {
		return snap
	}
	snap.Tick = g.world.Clock.Ticks()
	for e := range g.world.Arena.All() {
		snap.Entities = append(snap.Entities, EntitySnapshot{
			Kind:     e.Kind(),
			X:        e.X,
			Y:        e.Y,
			Speed:    e.Speed,
			Rotation: e.Rotation,
			Tier:     e.Tier,
		})
	}
	return snap
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	putF := func(v float64) { putU(math.Float64bits(v)) }

	putU(snap.Tick)
	putU(uint64(snap.Phase)) //#nosec G115 -- hash computation
	putU(uint64(snap.Score)) //#nosec G115 -- hash computation
	putU(uint64(snap.Lives)) //#nosec G115 -- hash computation
	putU(uint64(snap.Level)) //#nosec G115 -- hash computation
	for _, e := range snap.Entities {
		putU(uint64(e.Kind))
		putF(e.X)
		putF(e.Y)
		putF(e.Speed)
		putF(e.Rotation)
		putU(uint64(e.Tier)) //#nosec G115 -- hash computation
	}
	return d.Sum64()
}
