package frame

import (
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blockbreak/config"
	"github.com/lixenwraith/blockbreak/engine"
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/mode"
	"github.com/lixenwraith/blockbreak/render"
	"github.com/lixenwraith/blockbreak/status"
	"github.com/lixenwraith/blockbreak/vmath"
)

// Driver runs the per-frame pipeline: input snapshot, step, evaluate, render.
// All methods must be called from the host's main loop
type Driver struct {
	session  *engine.Session
	flow     *mode.Controller
	input    *input.Tracker
	renderer *render.Orchestrator
	metrics  *status.Registry
	logger   *slog.Logger

	maxDelta  float64
	scheduled bool
	last      time.Time
	sessionID string

	// Cached metric pointers
	frames    *atomic.Int64
	steps     *atomic.Int64
	kills     *atomic.Int64
	livesLost *atomic.Int64
	rounds    *atomic.Int64
	lastDelta *status.AtomicFloat
	stateTag  *status.AtomicString
	idTag     *status.AtomicString
	pausedTag *atomic.Bool
}

// Option configures a Driver
type Option func(*Driver)

// WithLogger routes transition and round logs to l
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMetrics shares a metrics registry with the host
func WithMetrics(r *status.Registry) Option {
	return func(d *Driver) {
		if r != nil {
			d.metrics = r
		}
	}
}

// New creates a driver on the start screen with a fresh session
func New(cfg config.Config, opts ...Option) *Driver {
	session := engine.NewSession(cfg)
	d := &Driver{
		session:  session,
		flow:     mode.NewController(session),
		input:    input.NewTracker(),
		renderer: render.NewGameRenderer(),
		metrics:  status.NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDelta: cfg.Frame.MaxDelta,
	}
	for _, opt := range opts {
		opt(d)
	}

	m := d.metrics
	d.frames = m.Ints.Get(status.KeyFrames)
	d.steps = m.Ints.Get(status.KeySteps)
	d.kills = m.Ints.Get(status.KeyKills)
	d.livesLost = m.Ints.Get(status.KeyLivesLost)
	d.rounds = m.Ints.Get(status.KeyRounds)
	d.lastDelta = m.Floats.Get(status.KeyLastDelta)
	d.stateTag = m.Strings.Get(status.KeyState)
	d.idTag = m.Strings.Get(status.KeySession)
	d.pausedTag = m.Bools.Get(status.KeyPaused)
	d.stateTag.Store(d.flow.State().String())

	d.flow.OnTransition(d.onTransition)
	return d
}

// Input returns the tracker the host feeds with key and pointer events
func (d *Driver) Input() *input.Tracker {
	return d.input
}

// Session exposes the simulation state for inspection
func (d *Driver) Session() *engine.Session {
	return d.session
}

// Controller exposes the flow controller for inspection
func (d *Driver) Controller() *mode.Controller {
	return d.flow
}

// Metrics returns the registry the driver writes to
func (d *Driver) Metrics() *status.Registry {
	return d.metrics
}

// Scheduled reports whether the next Frame call will advance the game
func (d *Driver) Scheduled() bool {
	return d.scheduled
}

// SessionID identifies the current round in logs, empty before the first Start
func (d *Driver) SessionID() string {
	return d.sessionID
}

// Dispatch forwards a session command. A successful Start schedules frames from now
func (d *Driver) Dispatch(cmd mode.Command, now time.Time) error {
	if cmd == mode.CommandStart && d.flow.State() == mode.StateStart {
		// Id is minted before the transition so its log line carries it
		d.sessionID = uuid.NewString()
		d.idTag.Store(d.sessionID)
	}

	if err := d.flow.Handle(cmd); err != nil {
		d.logger.Debug("command rejected", "command", cmd.String(), "error", err)
		return err
	}

	switch cmd {
	case mode.CommandStart:
		d.input.Reset()
		d.last = now
		d.scheduled = true
		d.rounds.Add(1)
	case mode.CommandCancel, mode.CommandRetry:
		d.scheduled = false
	}
	d.pausedTag.Store(d.flow.Paused())
	return nil
}

// Frame advances and draws one frame. It returns false when nothing was drawn,
// either because no round is scheduled or the round already ended
func (d *Driver) Frame(now time.Time, surf render.Surface) bool {
	if !d.scheduled {
		return false
	}
	if d.flow.State() != mode.StatePlay {
		d.scheduled = false
		return false
	}

	dt := now.Sub(d.last).Seconds()
	d.last = now
	if d.maxDelta > 0 {
		dt = vmath.Clamp(dt, 0, d.maxDelta)
	} else if dt < 0 {
		dt = 0
	}
	d.frames.Add(1)
	d.lastDelta.Set(dt)

	if d.flow.Paused() {
		// Clicks while paused are dropped, not queued for resume
		d.input.PointerClicked()
		d.render(surf)
		return true
	}

	in := d.input.Snapshot()
	if in.Clicked {
		d.session.DragPaddle(in.ClickX, in.ClickY)
	}

	res := d.session.Step(dt, in)
	d.steps.Add(1)
	if res.Killed >= 0 {
		d.kills.Add(1)
	}
	if res.LifeLost {
		d.livesLost.Add(1)
		d.logger.Debug("life lost", "session", d.sessionID, "lives", d.session.Lives)
	}

	if d.flow.Evaluate() {
		d.render(surf)
		d.scheduled = false
		return true
	}

	d.render(surf)
	return true
}

// Present draws the current frame if one is scheduled, otherwise the menu for the
// current state. The HUD is drawn over gameplay frames
func (d *Driver) Present(now time.Time, surf render.Surface) {
	if d.Frame(now, surf) {
		render.DrawHUD(surf, d.HUD())
		return
	}
	render.DrawMenu(surf, d.HUD())
}

// HUD projects session counters and flow state for display
func (d *Driver) HUD() render.HUD {
	return render.HUD{
		Lives:  d.session.Lives,
		Paused: d.flow.Paused(),
		State:  d.flow.State(),
		Reason: d.flow.Reason(),
	}
}

func (d *Driver) render(surf render.Surface) {
	d.renderer.Render(surf, render.Scene{
		Snapshot: d.session.Snapshot(),
		Paused:   d.flow.Paused(),
	})
}

func (d *Driver) onTransition(t mode.Transition) {
	d.stateTag.Store(t.To.String())
	d.pausedTag.Store(t.Paused)

	d.logger.Info("transition",
		"session", d.sessionID,
		"from", t.From.String(),
		"to", t.To.String(),
		"command", t.Command.String(),
		"reason", t.Reason.String(),
		"paused", t.Paused,
	)

	if t.To == mode.StateGameOver {
		d.logger.Info("round over", d.metrics.Attrs()...)
	}
}
