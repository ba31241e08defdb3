package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldWindow covers the usual terminal auto-repeat delay, so a key
// that is still down keeps its hold between repeats.
const DefaultHoldWindow = 550 * time.Millisecond

// holdable lists the actions that act as on/off commands, in the order
// releases are reported.
var holdable = [...]core.Action{
	core.ActionTurnLeft,
	core.ActionTurnRight,
	core.ActionThrust,
	core.ActionFire,
}

// opposite pairs turn directions: a terminal only auto-repeats the most
// recent key, so pressing one direction ends the other.
var opposite = map[core.Action]core.Action{
	core.ActionTurnLeft:  core.ActionTurnRight,
	core.ActionTurnRight: core.ActionTurnLeft,
}

// IsHoldable reports whether a is a held control.
func IsHoldable(a core.Action) bool {
	for _, h := range holdable {
		if h == a {
			return true
		}
	}
	return false
}

// HoldTracker turns key-repeat streams into press and release edges.
// Terminals report no key-up, so a held control is considered released
// once no repeat has arrived within the window.
type HoldTracker struct {
	window   time.Duration
	lastSeen map[core.Action]time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses
// DefaultHoldWindow.
func NewHoldTracker(window time.Duration) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HoldTracker{
		window:   window,
		lastSeen: make(map[core.Action]time.Time),
	}
}

// Press records a key event for a held control and writes the resulting
// edges into frame: a press when the hold starts, and a release for an
// opposite turn that was held. Repeats only refresh the hold.
func (h *HoldTracker) Press(a core.Action, now time.Time, frame *core.InputFrame) {
	if !IsHoldable(a) {
		frame.Set(a)
		return
	}
	if other, ok := opposite[a]; ok && h.Held(other) {
		delete(h.lastSeen, other)
		frame.Release(other)
	}
	if !h.Held(a) {
		frame.Set(a)
	}
	h.lastSeen[a] = now
}

// Expire writes a release into frame for every hold whose window passed.
func (h *HoldTracker) Expire(now time.Time, frame *core.InputFrame) {
	for _, a := range holdable {
		seen, ok := h.lastSeen[a]
		if ok && now.Sub(seen) >= h.window {
			delete(h.lastSeen, a)
			frame.Release(a)
		}
	}
}

// ReleaseAll ends every hold.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for _, a := range holdable {
		if h.Held(a) {
			frame.Release(a)
		}
	}
	clear(h.lastSeen)
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.lastSeen[a]
	return ok
}
