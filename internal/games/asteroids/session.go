package asteroids

// Phase is a state of the game state machine.
type Phase int

const (
	PhaseSplash       Phase = iota // Title screen, field drifting
	PhasePlaying                   // Ship in play
	PhaseLifeLost                  // Ship destroyed, respawn or game over pending
	PhaseLevelCleared              // Field cleared, next level pending
	PhaseGameOver                  // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhaseLifeLost:
		return "life-lost"
	case PhaseLevelCleared:
		return "level-cleared"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Session is the bookkeeping for one game from start to game over.
type Session struct {
	Lives            int
	Level            int
	Score            int
	LevelJustCleared bool
	Phase            Phase
}

// transition names the deferred state change that is pending.
type transition int

const (
	toRespawn transition = iota + 1
	toNextLevel
	toGameOver
)

func (t transition) String() string {
	switch t {
	case toRespawn:
		return "respawn"
	case toNextLevel:
		return "next-level"
	case toGameOver:
		return "game-over"
	default:
		return "none"
	}
}
