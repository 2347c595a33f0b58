package mode

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a command that is not legal in the current state
var ErrInvalidTransition = errors.New("invalid transition")

// Session is the part of the simulation the controller drives
type Session interface {
	Reset()
	Cleared() bool
	Dead() bool
}

type edge struct {
	from State
	cmd  Command
}

// edges lists every legal command transition. Gameover never leads back to play
// directly; retry returns to the start screen
var edges = map[edge]State{
	{StateStart, CommandStart}:      StatePlay,
	{StateStart, CommandCancel}:     StateStart,
	{StatePlay, CommandTogglePause}: StatePlay,
	{StatePlay, CommandCancel}:      StateStart,
	{StateGameOver, CommandCancel}:  StateStart,
	{StateGameOver, CommandRetry}:   StateStart,
}

// Controller is the start/play/gameover state machine with an orthogonal pause flag
type Controller struct {
	session Session

	state  State
	reason Reason
	paused bool

	observers []func(Transition)
}

// NewController creates a controller in StateStart
func NewController(session Session) *Controller {
	return &Controller{
		session: session,
		state:   StateStart,
	}
}

// State returns the current flow state
func (c *Controller) State() State {
	return c.state
}

// Reason returns the game over reason, ReasonNone outside StateGameOver
func (c *Controller) Reason() Reason {
	return c.reason
}

// Paused reports the pause flag, always false outside StatePlay
func (c *Controller) Paused() bool {
	return c.state == StatePlay && c.paused
}

// Running reports whether the simulation should step this frame
func (c *Controller) Running() bool {
	return c.state == StatePlay && !c.paused
}

// OnTransition registers an observer called after every accepted transition
func (c *Controller) OnTransition(fn func(Transition)) {
	c.observers = append(c.observers, fn)
}

// Handle applies a session command, rejecting commands not legal in the current state
func (c *Controller) Handle(cmd Command) error {
	to, ok := edges[edge{c.state, cmd}]
	if !ok {
		return fmt.Errorf("%w: %s in state %s", ErrInvalidTransition, cmd, c.state)
	}

	from := c.state
	switch cmd {
	case CommandStart:
		c.session.Reset()
		c.paused = false
		c.reason = ReasonNone
	case CommandTogglePause:
		c.paused = !c.paused
	case CommandCancel, CommandRetry:
		c.paused = false
		c.reason = ReasonNone
	}

	if from == StateStart && to == StateStart {
		// Cancel on the start screen changes nothing
		return nil
	}

	c.state = to
	c.notify(Transition{From: from, To: to, Command: cmd, Reason: c.reason, Paused: c.paused})
	return nil
}

// Start begins a fresh session
func (c *Controller) Start() error {
	return c.Handle(CommandStart)
}

// TogglePause flips the pause flag, only legal while playing
func (c *Controller) TogglePause() error {
	return c.Handle(CommandTogglePause)
}

// Cancel abandons the current session and returns to the start screen
func (c *Controller) Cancel() error {
	return c.Handle(CommandCancel)
}

// Retry leaves the game over screen for the start screen
func (c *Controller) Retry() error {
	return c.Handle(CommandRetry)
}

// Evaluate checks the session outcome after a step. A cleared field wins over
// exhausted lives. Returns true when the session ended
func (c *Controller) Evaluate() bool {
	if c.state != StatePlay {
		return false
	}

	var reason Reason
	switch {
	case c.session.Cleared():
		reason = ReasonClear
	case c.session.Dead():
		reason = ReasonDead
	default:
		return false
	}

	c.end(reason)
	return true
}

// end moves to StateGameOver with the given reason
func (c *Controller) end(reason Reason) {
	from := c.state
	c.state = StateGameOver
	c.reason = reason
	c.paused = false
	c.notify(Transition{From: from, To: StateGameOver, Command: CommandNone, Reason: reason})
}

func (c *Controller) notify(t Transition) {
	for _, fn := range c.observers {
		fn(t)
	}
}
