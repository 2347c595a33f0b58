package frame

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/blockbreak/config"
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/mode"
	"github.com/lixenwraith/blockbreak/render"
	"github.com/lixenwraith/blockbreak/status"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// startedDriver returns a driver already in play with its clock at epoch
func startedDriver(t *testing.T, cfg config.Config) (*Driver, *MockTimeProvider) {
	t.Helper()
	clock := NewMockTimeProvider(epoch)
	d := New(cfg)
	if err := d.Dispatch(mode.CommandStart, clock.Now()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return d, clock
}

func hasOp(rec *render.Recorder, kind render.OpKind, text string) bool {
	for _, op := range rec.Ops() {
		if op.Kind == kind && op.Text == text {
			return true
		}
	}
	return false
}

func TestFrameIdleBeforeStart(t *testing.T) {
	d := New(config.Default())
	rec := render.NewRecorder(640, 480)

	if d.Frame(epoch, rec) {
		t.Error("Frame() = true before start")
	}
	if len(rec.Ops()) != 0 {
		t.Errorf("recorded %d ops before start", len(rec.Ops()))
	}
	if d.Metrics().Ints.Get(status.KeyFrames).Load() != 0 {
		t.Error("frame counted before start")
	}
}

func TestFrameStepsWithElapsedTime(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	rec := render.NewRecorder(640, 480)

	if !d.Frame(clock.Advance(100*time.Millisecond), rec) {
		t.Fatal("Frame() = false while playing")
	}

	b := d.Session().Ball
	if !approx(b.X, 182) || !approx(b.Y, 218) {
		t.Errorf("ball at (%v, %v), want (182, 218)", b.X, b.Y)
	}
	if got := d.Metrics().Floats.Get(status.KeyLastDelta).Get(); !approx(got, 0.1) {
		t.Errorf("last_dt = %v, want 0.1", got)
	}
	if got := d.Metrics().Ints.Get(status.KeySteps).Load(); got != 1 {
		t.Errorf("steps = %d, want 1", got)
	}
	if ops := rec.Ops(); len(ops) == 0 || ops[0].Kind != render.OpClear {
		t.Error("frame was not rendered")
	}
}

func TestPauseFreezesStateButRenders(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	rec := render.NewRecorder(640, 480)

	d.Frame(clock.Advance(100*time.Millisecond), rec)
	if err := d.Dispatch(mode.CommandTogglePause, clock.Now()); err != nil {
		t.Fatalf("pause: %v", err)
	}

	before := d.Session().Snapshot()
	if !d.Frame(clock.Advance(500*time.Millisecond), rec) {
		t.Fatal("Frame() = false while paused")
	}
	after := d.Session().Snapshot()

	if before.Ball != after.Ball || before.Paddle != after.Paddle || before.Lives != after.Lives {
		t.Error("session changed while paused")
	}
	if !hasOp(rec, render.OpCenteredText, "PAUSED") {
		t.Error("paused frame missing PAUSED text")
	}
	if got := d.Metrics().Ints.Get(status.KeySteps).Load(); got != 1 {
		t.Errorf("steps = %d, want 1", got)
	}

	// Resume: the paused interval is not replayed
	d.Dispatch(mode.CommandTogglePause, clock.Now())
	d.Frame(clock.Advance(50*time.Millisecond), rec)
	if b := d.Session().Ball; !approx(b.X, 193) {
		t.Errorf("ball x after resume = %v, want 193", b.X)
	}
}

func TestMaxDeltaClamp(t *testing.T) {
	cfg := config.Default()
	cfg.Frame.MaxDelta = 0.05
	d, clock := startedDriver(t, cfg)

	d.Frame(clock.Advance(time.Second), render.NewRecorder(640, 480))

	if b := d.Session().Ball; !approx(b.X, 171) {
		t.Errorf("ball x = %v, want 171", b.X)
	}
}

func TestUnclampedDeltaByDefault(t *testing.T) {
	d, clock := startedDriver(t, config.Default())

	d.Frame(clock.Advance(400*time.Millisecond), render.NewRecorder(640, 480))

	if got := d.Metrics().Floats.Get(status.KeyLastDelta).Get(); !approx(got, 0.4) {
		t.Errorf("last_dt = %v, want 0.4", got)
	}
}

func TestClearEndsRound(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	s := d.Session()
	for i := range s.Enemies {
		s.Enemies[i].Alive = false
	}
	s.AliveCount = 0

	rec := render.NewRecorder(640, 480)
	if !d.Frame(clock.Advance(16*time.Millisecond), rec) {
		t.Fatal("final frame not rendered")
	}
	if d.Scheduled() {
		t.Error("still scheduled after game over")
	}
	if d.Controller().State() != mode.StateGameOver || d.Controller().Reason() != mode.ReasonClear {
		t.Errorf("state = %s/%s, want gameover/clear", d.Controller().State(), d.Controller().Reason())
	}

	if d.Frame(clock.Advance(16*time.Millisecond), rec) {
		t.Error("Frame() = true after game over")
	}

	d.Present(clock.Now(), rec)
	if !hasOp(rec, render.OpCenteredText, "GAME CLEAR!") {
		t.Error("game over screen not drawn")
	}
}

func TestLastLifeEndsRound(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	s := d.Session()
	s.Lives = 1
	s.Ball.X, s.Ball.Y = 300, 479
	s.Ball.VY = 220

	d.Frame(clock.Advance(100*time.Millisecond), render.NewRecorder(640, 480))

	if d.Controller().State() != mode.StateGameOver || d.Controller().Reason() != mode.ReasonDead {
		t.Errorf("state = %s/%s, want gameover/dead", d.Controller().State(), d.Controller().Reason())
	}
	if s.Lives != 0 {
		t.Errorf("lives = %d, want 0", s.Lives)
	}
	if got := d.Metrics().Ints.Get(status.KeyLivesLost).Load(); got != 1 {
		t.Errorf("lives_lost = %d, want 1", got)
	}
}

func TestClickDragsPaddle(t *testing.T) {
	d, clock := startedDriver(t, config.Default())

	d.Input().Click(150, 390)
	d.Frame(clock.Advance(16*time.Millisecond), render.NewRecorder(640, 480))

	if x := d.Session().Paddle.X; x != 138 {
		t.Errorf("paddle x = %v, want 138", x)
	}

	// Outside the paddle box
	d.Input().Click(400, 200)
	d.Frame(clock.Advance(16*time.Millisecond), render.NewRecorder(640, 480))
	if x := d.Session().Paddle.X; x != 138 {
		t.Errorf("paddle x = %v after miss, want 138", x)
	}
}

func TestClickDroppedWhilePaused(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	rec := render.NewRecorder(640, 480)

	d.Dispatch(mode.CommandTogglePause, clock.Now())
	d.Input().Click(150, 390)
	d.Frame(clock.Advance(16*time.Millisecond), rec)

	d.Dispatch(mode.CommandTogglePause, clock.Now())
	d.Frame(clock.Advance(16*time.Millisecond), rec)

	if x := d.Session().Paddle.X; x != 80 {
		t.Errorf("paddle x = %v, want 80", x)
	}
}

func TestHeldKeyMovesPaddle(t *testing.T) {
	d, clock := startedDriver(t, config.Default())

	d.Input().SetKeyDown(input.KeyRight)
	d.Frame(clock.Advance(100*time.Millisecond), render.NewRecorder(640, 480))

	if x := d.Session().Paddle.X; !approx(x, 120) {
		t.Errorf("paddle x = %v, want 120", x)
	}
}

func TestCancelUnschedules(t *testing.T) {
	d, clock := startedDriver(t, config.Default())

	if err := d.Dispatch(mode.CommandCancel, clock.Now()); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if d.Scheduled() {
		t.Error("scheduled after cancel")
	}
	if d.Frame(clock.Advance(time.Second), render.NewRecorder(640, 480)) {
		t.Error("Frame() = true after cancel")
	}
}

func TestDispatchRejectsIllegalCommand(t *testing.T) {
	d := New(config.Default())

	err := d.Dispatch(mode.CommandRetry, epoch)
	if !errors.Is(err, mode.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
	if d.Scheduled() {
		t.Error("scheduled after rejected command")
	}
}

func TestStartResetsInputAndMintsSession(t *testing.T) {
	d := New(config.Default())
	d.Input().SetKeyDown(input.KeyLeft)
	d.Input().Click(10, 10)

	d.Dispatch(mode.CommandStart, epoch)

	if d.Input().IsKeyDown(input.KeyLeft) {
		t.Error("held key survived start")
	}
	if _, _, ok := d.Input().PointerClicked(); ok {
		t.Error("pending click survived start")
	}

	first := d.SessionID()
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("session id %q: %v", first, err)
	}

	d.Dispatch(mode.CommandCancel, epoch)
	d.Dispatch(mode.CommandStart, epoch)
	if d.SessionID() == first {
		t.Error("session id reused across rounds")
	}
	if got := d.Metrics().Ints.Get(status.KeyRounds).Load(); got != 2 {
		t.Errorf("rounds = %d, want 2", got)
	}
}

func TestTransitionsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	d := New(config.Default(), WithLogger(logger))

	d.Dispatch(mode.CommandStart, epoch)
	d.Dispatch(mode.CommandTogglePause, epoch)

	out := buf.String()
	for _, want := range []string{"to=play", "command=start", "paused=true", "session=" + d.SessionID()} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
	if got := d.Metrics().Strings.Get(status.KeyState).Load(); got != "play" {
		t.Errorf("state metric = %q, want play", got)
	}
}

func TestPresentDrawsHUDDuringPlay(t *testing.T) {
	d, clock := startedDriver(t, config.Default())
	rec := render.NewRecorder(640, 480)

	d.Present(clock.Advance(16*time.Millisecond), rec)

	if !hasOp(rec, render.OpText, "LIFE: 3") {
		t.Error("HUD missing from play frame")
	}
}

func TestPresentDrawsStartMenu(t *testing.T) {
	d := New(config.Default())
	rec := render.NewRecorder(640, 480)

	d.Present(epoch, rec)

	if !hasOp(rec, render.OpCenteredText, "BLOCK BREAK") {
		t.Error("start menu not drawn")
	}
}
