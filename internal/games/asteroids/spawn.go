package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
)

// shipHeading points new ships up the screen.
const shipHeading = -math.Pi / 2

// placeField spawns the asteroid field for a level: one large asteroid near
// each corner, then extras clustered around the wrapped far corner.
func (g *Game) placeField(level int) {
	size := g.cfg.World.Size
	off := g.cfg.World.EdgeOffset
	corners := []core.Vec2{
		core.V(off, off),
		core.V(size-off, off),
		core.V(off, size-off),
		core.V(size-off, size-off),
	}
	rng := g.world.Rand()
	jitter := func() float64 { return float64(rng.Intn(100) - 50) }
	speed := g.cfg.Asteroid.MaxSpeed[config.SizeLarge] * g.world.SpeedFactor

	n := g.cfg.Asteroid.FieldSize(level)
	for i := range n {
		at := core.V(-off, -off)
		if i < len(corners) {
			at = corners[i]
		}
		at = at.Add(core.V(jitter(), jitter()))
		if _, err := g.world.SpawnAsteroid(config.SizeLarge, rng.Intn(sim.AsteroidVarieties), at, speed); err != nil {
			panic(err)
		}
	}
	logger.Debug("field placed", "level", level, "asteroids", n)
}

// placeShip puts a fresh ship at the centre, removing any previous one, and
// restarts the heartbeat.
func (g *Game) placeShip() {
	g.world.Arena.Remove(g.ship)
	centre := g.cfg.World.Size / 2
	ship := g.world.SpawnShip(core.V(centre, centre), shipHeading)
	g.ship = ship.Handle()
	g.legend = ""
	g.beat.alarm.Restart(g.world.Now())
}

// alienTier picks the saucer size for the current level.
func (g *Game) alienTier() int {
	if g.session.Level >= g.cfg.Alien.SmallLevel {
		return sim.AlienSmall
	}
	return sim.AlienLarge
}

// placeAlien spawns a saucer if the level allows one and none is present.
func (g *Game) placeAlien() {
	if g.session.Level < g.cfg.Alien.MinLevel || g.world.Arena.Get(g.alien) != nil {
		return
	}
	alien, err := g.world.SpawnAlien(g.alienTier())
	if err != nil {
		panic(err)
	}
	g.alien = alien.Handle()
	g.alienFire.Restart(g.world.Now())
	g.alienSteer.Restart(g.world.Now())
	logger.Debug("alien spawned", "level", g.session.Level, "tier", alien.Tier)
}

// alienShoot fires at the ship: randomly from large saucers, aimed from
// small ones.
func (g *Game) alienShoot() {
	alien := g.world.Arena.Get(g.alien)
	ship := g.world.Arena.Get(g.ship)
	if alien == nil || ship == nil {
		return
	}
	g.world.AlienFire(alien, ship, alien.Tier == sim.AlienSmall)
}

// dismissAlien removes the saucer without scoring and re-arms nothing.
func (g *Game) dismissAlien() {
	if alien := g.world.Arena.Get(g.alien); alien != nil {
		g.world.DismissAlien(alien)
	}
	g.alien = 0
	g.alienFire.Stop()
	g.alienSteer.Stop()
}

// tickAlarms runs the process-wide alarms: heartbeat, alien arrival, alien
// fire and alien steering.
func (g *Game) tickAlarms() {
	now := g.world.Now()
	g.beat.tick(g.world)
	if g.alienAlarm.Due(now) {
		g.placeAlien()
	}
	if g.alienFire.Due(now) {
		g.alienShoot()
	}
	if g.alienSteer.Due(now) {
		g.world.SteerAlien(g.world.Arena.Get(g.alien))
	}
}
