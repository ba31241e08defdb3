package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // A, Left arrow - rotate counter-clockwise while held
	ActionTurnRight        // D, Right arrow - rotate clockwise while held
	ActionThrust           // W, Up arrow - accelerate while held
	ActionFire             // Space - one shot on press, continuous while held
	ActionMissile          // M, X - launch a homing missile (enhanced mode)
	ActionConfirm          // Enter - start game from the splash screen
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionMissile:
		return "Missile"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input edges delivered during one simulation tick.
// Presses and releases are tracked separately so that held controls
// (turn, thrust, fire) can be modelled as on/off commands.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// Released maps action types to whether they were released this frame.
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks an action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// HasRelease returns true if the given action was released this frame.
func (f InputFrame) HasRelease(a Action) bool {
	if f.Released == nil {
		return false
	}
	return f.Released[a]
}

// Empty reports whether the frame carries no edges at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Released) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Released)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
