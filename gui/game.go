package gui

import (
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/blockbreak/frame"
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/render"
)

type binding struct {
	key     ebiten.Key
	logical input.Key
}

// Held keys are polled every tick; command keys fire on the press edge
var (
	heldBindings = []binding{
		{ebiten.KeyArrowLeft, input.KeyLeft},
		{ebiten.KeyA, input.KeyLeft},
		{ebiten.KeyArrowRight, input.KeyRight},
		{ebiten.KeyD, input.KeyRight},
	}
	pressBindings = []binding{
		{ebiten.KeyEnter, input.KeyStart},
		{ebiten.KeySpace, input.KeyStart},
		{ebiten.KeyP, input.KeyPause},
		{ebiten.KeyEscape, input.KeyCancel},
		{ebiten.KeyR, input.KeyRetry},
		{ebiten.KeyQ, input.KeyQuit},
	}
)

// Game adapts a frame driver to ebiten's Update/Draw split. Update advances the
// driver into a recorder, Draw replays the recorded frame onto the screen
type Game struct {
	driver   *frame.Driver
	recorder *render.Recorder
	clock    frame.TimeProvider
	logger   *slog.Logger

	width, height int
}

// NewGame creates an ebiten game for driver
func NewGame(driver *frame.Driver, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := driver.Session().Config()
	return &Game{
		driver:   driver,
		recorder: render.NewRecorder(cfg.Canvas.Width, cfg.Canvas.Height),
		clock:    frame.NewMonotonicTimeProvider(),
		logger:   logger,
		width:    int(cfg.Canvas.Width),
		height:   int(cfg.Canvas.Height),
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	now := g.clock.Now()
	tracker := g.driver.Input()

	for _, b := range heldBindings {
		if inpututil.IsKeyJustReleased(b.key) {
			tracker.SetKeyUp(b.logical)
		}
	}
	for _, b := range heldBindings {
		if ebiten.IsKeyPressed(b.key) {
			tracker.SetKeyDown(b.logical)
		}
	}

	for _, b := range pressBindings {
		if !inpututil.IsKeyJustPressed(b.key) {
			continue
		}
		if b.logical == input.KeyQuit {
			g.logger.Info("quit requested")
			return ebiten.Termination
		}
		cmd := frame.CommandFor(b.logical)
		if err := g.driver.Dispatch(cmd, now); err != nil {
			g.logger.Debug("key ignored", "key", b.logical.String(), "error", err)
		}
	}

	mx, my := ebiten.CursorPosition()
	tracker.MovePointer(float64(mx), float64(my))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.driver.Controller().Running() {
		tracker.Click(float64(mx), float64(my))
	}

	g.driver.Present(now, g.recorder)
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.recorder.Replay(NewSurface(screen))
}

// Layout implements ebiten.Game. The canvas has a fixed logical size and ebiten scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
