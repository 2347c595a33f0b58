package terminal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockbreak/core"
	"github.com/lixenwraith/blockbreak/frame"
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/mode"
)

const eventQueueSize = 100

// Host runs a frame driver on a tcell screen: one goroutine polls events,
// the Run loop owns all game state
type Host struct {
	screen  tcell.Screen
	driver  *frame.Driver
	surface *Surface
	latch   *KeyLatch
	keys    *KeyTable
	clock   frame.TimeProvider
	logger  *slog.Logger

	interval time.Duration
	buttons  tcell.ButtonMask
}

// NewHost creates a host for an initialized screen. fps <= 0 selects 60
func NewHost(screen tcell.Screen, driver *frame.Driver, fps int, logger *slog.Logger) *Host {
	if fps <= 0 {
		fps = 60
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cols, rows := screen.Size()
	cfg := driver.Session().Config()
	return &Host{
		screen:   screen,
		driver:   driver,
		surface:  NewSurface(cfg.Canvas.Width, cfg.Canvas.Height, cols, rows),
		latch:    NewKeyLatch(driver.Input(), DefaultFirstHold, DefaultRepeatHold),
		keys:     DefaultKeyTable(),
		clock:    frame.NewMonotonicTimeProvider(),
		logger:   logger,
		interval: time.Second / time.Duration(fps),
	}
}

// Run processes events and frames until quit is requested or ctx is done.
// The caller owns screen teardown and crash cleanup registration
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	eventChan := make(chan tcell.Event, eventQueueSize)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.tick(h.clock.Now())
	for {
		select {
		case <-ctx.Done():
			h.logger.Info("host stopped", "cause", context.Cause(ctx))
			return nil

		case ev := <-eventChan:
			if !h.HandleEvent(ev, h.clock.Now()) {
				h.logger.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			h.tick(h.clock.Now())
		}
	}
}

// HandleEvent applies one screen event. It returns false when the user asked to quit
func (h *Host) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(h.keys.Lookup(ev.Key(), ev.Rune(), ev.Modifiers()), now)

	case *tcell.EventMouse:
		x, y := ev.Position()
		h.handlePointer(x, y, ev.Buttons())

	case *tcell.EventResize:
		cols, rows := ev.Size()
		h.surface.Resize(cols, rows)
		h.screen.Sync()
	}
	return true
}

func (h *Host) handleKey(k input.Key, now time.Time) bool {
	switch k {
	case input.KeyNone:
		return true
	case input.KeyQuit:
		return false
	case input.KeyLeft, input.KeyRight:
		h.latch.Press(k, now)
		return true
	}

	cmd := frame.CommandFor(k)
	if err := h.driver.Dispatch(cmd, now); err != nil {
		h.logger.Debug("key ignored", "key", k.String(), "error", err)
		return true
	}
	if cmd == mode.CommandStart {
		// Driver released every key on start
		h.latch.Reset()
	}
	return true
}

// handlePointer moves the pointer and registers a click on the primary button's press edge
func (h *Host) handlePointer(col, row int, buttons tcell.ButtonMask) {
	x, y := h.surface.CanvasAt(col, row)
	tracker := h.driver.Input()
	tracker.MovePointer(x, y)

	pressed := buttons&tcell.Button1 != 0
	wasPressed := h.buttons&tcell.Button1 != 0
	if pressed && !wasPressed && h.driver.Controller().Running() {
		tracker.Click(x, y)
	}
	h.buttons = buttons
}

func (h *Host) tick(now time.Time) {
	h.latch.Expire(now)
	h.driver.Present(now, h.surface)
	h.surface.Flush(h.screen)
	h.screen.Show()
}
