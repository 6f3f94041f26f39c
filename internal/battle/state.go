package battle

// Side identifies one of the two competitors.
type Side int

const (
	Side1 Side = 1
	Side2 Side = 2
)

func (s Side) index() int {
	return int(s) - 1
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Side1 {
		return Side2
	}
	return Side1
}

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Side1:
		return "player 1"
	case Side2:
		return "player 2"
	default:
		return "nobody"
	}
}

// State is the phase of a match.
type State int

const (
	StatePre State = iota
	StateActive
	StatePlayer1Wins
	StatePlayer2Wins
	StateDraw
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StatePre:
		return "pre"
	case StateActive:
		return "active"
	case StatePlayer1Wins:
		return "player-1-wins"
	case StatePlayer2Wins:
		return "player-2-wins"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state is a final outcome.
func (s State) Terminal() bool {
	return s == StatePlayer1Wins || s == StatePlayer2Wins || s == StateDraw
}

// Winner returns the winning side, or 0 for a draw or unfinished match.
func (s State) Winner() Side {
	switch s {
	case StatePlayer1Wins:
		return Side1
	case StatePlayer2Wins:
		return Side2
	default:
		return 0
	}
}

// Process exit codes reported to batch runners.
const (
	ExitNoResult   = 0
	ExitPlayer1Win = 1
	ExitPlayer2Win = 2
	ExitDraw       = 3
)

// ExitCode maps the state to the process exit code contract.
func (s State) ExitCode() int {
	switch s {
	case StatePlayer1Wins:
		return ExitPlayer1Win
	case StatePlayer2Wins:
		return ExitPlayer2Win
	case StateDraw:
		return ExitDraw
	default:
		return ExitNoResult
	}
}

// StateFromExitCode is the inverse of ExitCode. Unknown codes map to StatePre.
func StateFromExitCode(code int) State {
	switch code {
	case ExitPlayer1Win:
		return StatePlayer1Wins
	case ExitPlayer2Win:
		return StatePlayer2Wins
	case ExitDraw:
		return StateDraw
	default:
		return StatePre
	}
}
