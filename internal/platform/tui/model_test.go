package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// fakeGame records what the platform hands it.
type fakeGame struct {
	frames []core.InputFrame
	state  core.GameState
	sound  core.SoundPlayer
	resets int
}

func (g *fakeGame) ID() string                  { return "fake" }
func (g *fakeGame) Title() string               { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig)    { g.resets++ }
func (g *fakeGame) Render(*core.Screen)         {}
func (g *fakeGame) State() core.GameState       { return g.state }
func (g *fakeGame) TickInterval() time.Duration { return 20 * time.Millisecond }
func (g *fakeGame) SetSound(p core.SoundPlayer) { g.sound = p }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

func testModel(game *fakeGame, store *storage.Store) (Model, *time.Time) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	m := NewModel(game, store, cfg, &core.SoundRecorder{})
	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }
	return m, &clock
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(m Model, at time.Time) TickMsg {
	return TickMsg{Time: at, Gen: m.gen}
}

func TestModelUsesGamePacingAndSound(t *testing.T) {
	game := &fakeGame{}
	m, _ := testModel(game, nil)

	if m.interval != 20*time.Millisecond {
		t.Errorf("interval = %v, want the game's own", m.interval)
	}
	if _, ok := game.sound.(*core.SoundRecorder); !ok {
		t.Errorf("game sound = %T, want the platform player", game.sound)
	}

	cfg := core.DefaultConfig()
	cfg.Muted = true
	NewModel(game, nil, cfg, &core.SoundRecorder{})
	if _, ok := game.sound.(core.NopSound); !ok {
		t.Errorf("muted game sound = %T, want NopSound", game.sound)
	}
}

func TestModelHeldKeyReleasesAfterWindow(t *testing.T) {
	game := &fakeGame{}
	m, clock := testModel(game, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tick(m, *clock))
	if !game.last().Has(core.ActionThrust) {
		t.Fatal("first tick should carry the thrust press")
	}

	*clock = clock.Add(100 * time.Millisecond)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, tick(m, *clock))
	if !game.last().Empty() {
		t.Fatalf("repeat should carry no edges, got %+v", game.last())
	}

	m = send(t, m, tick(m, clock.Add(DefaultHoldWindow)))
	if !game.last().HasRelease(core.ActionThrust) {
		t.Fatal("expected a synthesized release")
	}
	send(t, m, tick(m, clock.Add(2*DefaultHoldWindow)))
	if game.last().HasRelease(core.ActionThrust) {
		t.Error("release should be delivered once")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m, clock := testModel(game, store)

	game.state = core.GameState{Score: 1200, Level: 3, GameOver: true}
	for range 3 {
		m = send(t, m, tick(m, *clock))
	}

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, want 1", len(scores))
	}
	if scores[0].Score != 1200 || scores[0].Level != 3 {
		t.Errorf("saved %+v", scores[0])
	}

	// Restart begins a new run.
	m = send(t, m, runeKey('r'))
	m = send(t, m, tick(m, *clock))
	if game.resets != 1 || m.scoreSaved {
		t.Errorf("restart: resets = %d, scoreSaved = %v", game.resets, m.scoreSaved)
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	game := &fakeGame{}
	m, clock := testModel(game, nil)

	m = send(t, m, tick(m, *clock))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back during play should be ignored")
	}

	game.state.Paused = true
	m = send(t, m, tick(m, *clock))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("back while paused should leave the game")
	}

	rec := m.sound.(*core.SoundRecorder)
	stops := 0
	for _, e := range rec.Events {
		if e.Op == core.SoundOpStop {
			stops++
		}
	}
	if stops != len(loopedSounds) {
		t.Errorf("leaving stopped %d loops, want %d", stops, len(loopedSounds))
	}

	steps := len(game.frames)
	send(t, m, tick(m, *clock))
	if len(game.frames) != steps {
		t.Error("ticks after leaving should not step the game")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	game := &fakeGame{}
	old, clock := testModel(game, nil)
	m, _ := testModel(game, nil)

	next, cmd := m.Update(tick(old, *clock))
	if cmd != nil || len(game.frames) != 0 {
		t.Fatal("a tick from an earlier model should be dropped")
	}

	m = next.(Model)
	send(t, m, tick(m, *clock))
	if len(game.frames) != 1 {
		t.Errorf("own tick stepped %d times, want 1", len(game.frames))
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := testModel(&fakeGame{}, nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}
