package mode

// State is the top-level game flow state
type State uint8

const (
	StateStart State = iota
	StatePlay
	StateGameOver
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlay:
		return "play"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Reason is why a session ended, only meaningful in StateGameOver
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonDead
	ReasonClear
)

// String returns the reason name
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonDead:
		return "dead"
	case ReasonClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Title is the headline shown on the game over screen
func (r Reason) Title() string {
	switch r {
	case ReasonClear:
		return "GAME CLEAR!"
	case ReasonDead:
		return "GAME OVER"
	default:
		return "GAME END"
	}
}

// Message is the line under the title on the game over screen
func (r Reason) Message() string {
	switch r {
	case ReasonClear:
		return "All blocks destroyed"
	case ReasonDead:
		return "No lives left..."
	default:
		return "Thanks for playing."
	}
}

// Command is a session command issued by the player
type Command uint8

const (
	CommandNone Command = iota // Outcome-driven transitions carry no command
	CommandStart
	CommandTogglePause
	CommandCancel
	CommandRetry
)

// String returns the command name
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandStart:
		return "start"
	case CommandTogglePause:
		return "pause"
	case CommandCancel:
		return "cancel"
	case CommandRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// Transition describes one accepted state change, passed to observers
type Transition struct {
	From, To State
	Command  Command
	Reason   Reason
	Paused   bool
}
