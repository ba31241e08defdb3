// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the model
// that scheduled it; a model ignores ticks from an earlier one.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh generation for a new game model.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

// tickInterval returns the game's own pacing, or the platform tick rate
// for games that do not set one.
func tickInterval(game registry.Game, tickRate int) time.Duration {
	if p, ok := game.(registry.Paced); ok {
		if d := p.TickInterval(); d > 0 {
			return d
		}
	}
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}
