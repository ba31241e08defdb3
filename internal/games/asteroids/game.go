// Package asteroids implements the Asteroids game state machine on top of
// the sim package: sessions, level and life transitions, spawning, the
// heartbeat, controls and rendering.
package asteroids

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Legends shown in the middle of the field.
const (
	LegendTitle    = "ASTEROIDS"
	LegendStart    = "press enter to start"
	LegendOuch     = "Ouch!"
	LegendGameOver = "Game Over"
	LegendPaused   = "Paused"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game event logging to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Mode selects the rule set.
type Mode int

const (
	ModeClassic  Mode = iota
	ModeEnhanced      // Bullets hit aliens, asteroids split, missiles enabled
)

// Game implements the Asteroids game logic.
type Game struct {
	mode Mode

	runtime    core.RuntimeConfig
	cfg        config.AsteroidsConfig
	palette    config.Palette
	difficulty *config.DifficultyManager
	sound      core.SoundPlayer

	world      *sim.World
	session    Session
	transition sim.Transition[transition]
	paused     bool
	legend     string

	ship  sim.Handle
	alien sim.Handle

	beat       *heartbeat
	alienAlarm *sim.Alarm
	alienFire  *sim.Alarm
	alienSteer *sim.Alarm

	held controls
}

// New creates a classic Asteroids game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewEnhanced creates an Asteroids game with the enhanced rule set.
func NewEnhanced() *Game {
	return &Game{mode: ModeEnhanced}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEnhanced {
		return "asteroids_enhanced"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEnhanced {
		return "Asteroids (Enhanced)"
	}
	return "Asteroids"
}

// SetSound sets the audio collaborator. Nil mutes the game.
func (g *Game) SetSound(p core.SoundPlayer) {
	if p == nil {
		p = core.NopSound{}
	}
	g.sound = p
	if g.world != nil {
		g.world.Sound = p
	}
}

// TickInterval returns the configured simulation step.
func (g *Game) TickInterval() time.Duration {
	if g.cfg.Timing.TickInterval > 0 {
		return g.cfg.Timing.TickInterval
	}
	return config.DefaultAsteroidsConfig().Timing.TickInterval
}

// ResolveConfig returns the configuration a new game in mode would use:
// file or defaults, then the difficulty preset, then the enhanced rule
// set. On a load error the defaults are used and the error is returned
// alongside them.
func ResolveConfig(mode Mode) (config.AsteroidsConfig, string, error) {
	cfg, src, err := config.LoadAsteroidsFrom(configPath)
	if err != nil {
		cfg, src = config.DefaultAsteroidsConfig(), config.SourceBuiltin
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	if mode == ModeEnhanced {
		cfg = config.EnhancedAsteroidsConfig(cfg)
	}
	return cfg, src, err
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	cfg, src, err := ResolveConfig(g.mode)
	if err != nil {
		logger.Warn("using default config", "err", err)
	} else {
		logger.Debug("config loaded", "source", src)
	}
	return cfg
}

// Reset loads configuration and shows the splash screen with a drifting
// field.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	palette, err := g.cfg.Colors.Palette()
	if err != nil {
		logger.Warn("bad palette", "err", err)
	}
	g.palette = palette
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.sound == nil || runtime.Muted {
		g.sound = core.NopSound{}
	}

	g.world = sim.NewWorld(g.cfg, runtime.Seed)
	g.world.Sound = g.sound
	g.world.Listener = g
	if g.mode == ModeEnhanced {
		g.world.GrantDestroys(sim.KindBullet, sim.KindAlien)
	}

	g.beat = newHeartbeat(g.cfg.Beat)
	g.alienAlarm = sim.NewAlarm(g.cfg.Timing.AlienDelay)
	g.alienFire = sim.NewAlarm(g.cfg.Timing.AlienFireInterval)
	g.alienSteer = sim.NewAlarm(g.cfg.Timing.AlienSteerInterval)

	g.session = Session{Lives: g.cfg.Ship.Lives, Level: 1, Phase: PhaseSplash}
	g.transition.Cancel()
	g.paused = false
	g.ship, g.alien = 0, 0
	g.held.clear()
	g.legend = LegendTitle

	g.placeField(1)
}

// start begins play from the splash screen.
func (g *Game) start() {
	g.clearField()
	g.session = Session{Lives: g.cfg.Ship.Lives, Level: 1, Phase: PhasePlaying}
	g.applyDifficulty()
	g.placeField(g.session.Level)
	g.placeShip()
	logger.Info("game started", "mode", g.ID(), "lives", g.session.Lives)
}

// clearField empties the world and resets the heartbeat and alien timers.
func (g *Game) clearField() {
	g.dismissAlien()
	g.world.Sound.Stop(core.SoundThrust)
	g.world.Reset()
	g.ship = 0
	g.legend = ""
	g.beat.reset()
	g.beat.alarm.Restart(g.world.Now())
	g.alienAlarm.Restart(g.world.Now())
}

// applyDifficulty updates speed and alien pacing for the current level.
func (g *Game) applyDifficulty() {
	lvl, score := g.session.Level, g.session.Score
	g.world.SpeedFactor = g.difficulty.SpeedFactor(lvl, score)
	g.alienAlarm.SetInterval(g.difficulty.AlienDelay(g.cfg.Timing.AlienDelay, lvl, score))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.Phase == PhaseGameOver {
		g.Reset(g.runtime)
		return g.result()
	}

	if g.session.Phase == PhaseSplash {
		g.world.Clock.Advance(g.TickInterval())
		g.world.Step()
		if in.Has(core.ActionConfirm) || in.Has(core.ActionFire) {
			g.start()
		}
		return g.result()
	}

	if in.Has(core.ActionPause) && g.session.Phase != PhaseGameOver {
		g.paused = !g.paused
		if g.paused {
			g.world.Sound.Stop(core.SoundThrust)
		}
	}
	if g.paused {
		g.held.apply(in)
		return g.result()
	}

	g.world.Clock.Advance(g.TickInterval())
	now := g.world.Now()

	if g.session.Phase != PhaseGameOver {
		if t, ok := g.transition.Poll(now); ok {
			g.perform(t)
		}
	}
	if g.session.Phase != PhaseGameOver {
		g.tickAlarms()
	}
	g.world.FireCountdowns()
	g.applyControls(in)
	g.world.MoveAll()
	g.world.Collide()
	g.world.Arena.Compact()

	return g.result()
}

func (g *Game) result() core.StepResult {
	var tick uint64
	if g.world != nil {
		tick = g.world.Clock.Ticks()
	}
	return core.StepResult{State: g.State(), Tick: tick}
}

// perform applies a deferred transition whose deadline has passed.
func (g *Game) perform(t transition) {
	logger.Debug("transition", "to", t, "phase", g.session.Phase, "level", g.session.Level)
	switch t {
	case toRespawn:
		g.placeShip()
		g.session.Phase = PhasePlaying
	case toNextLevel:
		g.clearField()
		g.applyDifficulty()
		g.placeField(g.session.Level)
		g.placeShip()
		g.session.LevelJustCleared = false
		g.session.Phase = PhasePlaying
	case toGameOver:
		g.dismissAlien()
		g.alienAlarm.Stop()
		g.beat.alarm.Stop()
		g.world.Sound.Stop(core.SoundThrust)
		g.clearProjectiles()
		g.transition.Cancel()
		g.session.Phase = PhaseGameOver
		g.legend = LegendGameOver
		logger.Info("game over", "score", g.session.Score, "level", g.session.Level)
	}
}

// clearProjectiles expires every shot still in flight.
func (g *Game) clearProjectiles() {
	for e := range g.world.Arena.All() {
		switch e.Kind() {
		case sim.KindBullet, sim.KindAlienBullet, sim.KindMissile:
			g.world.Arena.Expire(e)
		}
	}
}

// EntityDestroyed is called by the world for every destruction. Game over
// is final: nothing scores or changes the session after it.
func (g *Game) EntityDestroyed(e, by *sim.Entity) {
	if g.session.Phase == PhaseGameOver {
		return
	}
	switch e.Kind() {
	case sim.KindShip:
		g.shipDestroyed(e)
	case sim.KindAsteroid:
		if sim.PlayerOwned(by.Kind()) {
			g.session.Score += g.cfg.Asteroid.Score[e.Tier]
		}
		g.asteroidDestroyed()
	case sim.KindAlien:
		if sim.PlayerOwned(by.Kind()) {
			g.session.Score += g.cfg.Alien.Score[e.Tier]
		}
		g.alienDestroyed(e)
	}
}

func (g *Game) shipDestroyed(e *sim.Entity) {
	if e.Handle() != g.ship {
		return
	}
	g.ship = 0
	g.beat.alarm.Stop()
	g.session.Lives--
	g.legend = LegendOuch
	logger.Debug("ship destroyed", "lives", g.session.Lives)

	if g.session.Lives <= 0 {
		g.session.Lives = 0
		g.session.Phase = PhaseLifeLost
		g.transition.Schedule(g.world.Now(), g.cfg.Timing.EndDelay, toGameOver)
		return
	}
	if pending, ok := g.transition.Pending(); ok && pending == toNextLevel {
		// The next level places a fresh ship.
		return
	}
	g.session.Phase = PhaseLifeLost
	g.transition.Schedule(g.world.Now(), g.cfg.Timing.RespawnDelay, toRespawn)
}

func (g *Game) asteroidDestroyed() {
	if g.world.Arena.CountAsteroids() > 0 || g.session.Phase == PhaseSplash || g.session.Phase == PhaseGameOver {
		return
	}
	if pending, ok := g.transition.Pending(); ok && pending == toGameOver {
		return
	}
	g.beat.reset()
	g.alienAlarm.Stop()
	g.dismissAlien()
	g.session.Level++
	g.session.LevelJustCleared = true
	g.session.Phase = PhaseLevelCleared
	g.legend = ""
	g.transition.Schedule(g.world.Now(), g.cfg.Timing.EndDelay, toNextLevel)
	logger.Debug("level cleared", "next", g.session.Level, "score", g.session.Score)
}

func (g *Game) alienDestroyed(e *sim.Entity) {
	if e.Handle() != g.alien {
		return
	}
	g.alien = 0
	g.alienFire.Stop()
	g.alienSteer.Stop()
	if g.session.Phase != PhaseGameOver && g.session.Phase != PhaseLevelCleared {
		g.alienAlarm.Restart(g.world.Now())
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		return
	}
	renderScene(dst, g)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		Level:    g.session.Level,
		Lives:    g.session.Lives,
		GameOver: g.session.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Session returns a copy of the session bookkeeping.
func (g *Game) Session() Session {
	return g.session
}

// World exposes the simulation, mainly for tests and tooling.
func (g *Game) World() *sim.World {
	return g.world
}

func init() {
	registry.Register("asteroids", func() registry.Game { return New() })
	registry.Register("asteroids_enhanced", func() registry.Game { return NewEnhanced() })
}
