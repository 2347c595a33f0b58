package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockbreak/component"
)

// 80x24 cells over 640x480 gives 8x10 canvas pixels per half-cell pixel
func newTestSurface() *Surface {
	return NewSurface(640, 480, 80, 24)
}

func TestSurfaceFillRectCoversPixelCenters(t *testing.T) {
	s := newTestSurface()
	s.FillRect(0, 0, 60, 20, component.Red)

	tests := []struct {
		i, j int
		want component.Color
	}{
		{0, 0, component.Red},
		{6, 1, component.Red},
		{7, 0, component.Black},
		{0, 2, component.Black},
	}
	for _, tt := range tests {
		if got := s.Pixel(tt.i, tt.j); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestSurfaceThinRectStillVisible(t *testing.T) {
	s := newTestSurface()
	s.FillRect(100, 100, 2, 2, component.White)

	if got := s.Pixel(12, 10); got != component.White {
		t.Errorf("Pixel(12, 10) = %v, want white", got)
	}
}

func TestSurfaceFillCircle(t *testing.T) {
	s := newTestSurface()
	s.FillCircle(320, 240, 16, component.White)

	if got := s.Pixel(40, 24); got != component.White {
		t.Errorf("center pixel = %v, want white", got)
	}
	if got := s.Pixel(45, 24); got != component.Black {
		t.Errorf("outside pixel = %v, want black", got)
	}

	s.Clear()
	s.FillCircle(3, 3, 1, component.White)
	if got := s.Pixel(0, 0); got != component.White {
		t.Errorf("sub-pixel circle not drawn, got %v", got)
	}
}

func TestSurfaceTranslucentBlend(t *testing.T) {
	s := newTestSurface()
	s.FillRect(0, 0, 640, 480, component.White)
	s.FillOverlay(0.5, component.Black)

	want := component.RGB(127, 127, 127)
	if got := s.Pixel(10, 10); got != want {
		t.Errorf("overlay pixel = %v, want %v", got, want)
	}

	s.Clear()
	s.FillRect(0, 0, 8, 10, component.White.WithAlpha(0))
	if got := s.Pixel(0, 0); got != component.Black {
		t.Errorf("transparent fill changed pixel to %v", got)
	}
}

func TestSurfaceText(t *testing.T) {
	s := newTestSurface()
	s.DrawCenteredText("PAUSED", 320, 240, component.White)
	s.DrawText("LIFE: 3", 8, 456, component.White)

	if got := s.Text(37, 12); got != 'P' {
		t.Errorf("Text(37, 12) = %q, want 'P'", got)
	}
	if got := s.Text(42, 12); got != 'D' {
		t.Errorf("Text(42, 12) = %q, want 'D'", got)
	}
	if got := s.Text(1, 22); got != 'L' {
		t.Errorf("Text(1, 22) = %q, want 'L'", got)
	}

	s.Clear()
	if got := s.Text(37, 12); got != 0 {
		t.Errorf("text survived Clear: %q", got)
	}
}

func TestSurfaceResize(t *testing.T) {
	s := newTestSurface()
	s.FillRect(0, 0, 640, 480, component.Red)

	s.Resize(40, 12)
	if cols, rows := s.Grid(); cols != 40 || rows != 12 {
		t.Fatalf("Grid() = %dx%d, want 40x12", cols, rows)
	}
	if got := s.Pixel(0, 0); got != component.Black {
		t.Errorf("Resize did not clear, got %v", got)
	}

	s.Resize(0, 0)
	s.FillRect(0, 0, 10, 10, component.Red)
	s.FillCircle(5, 5, 5, component.Red)
}

func TestSurfaceCoordinateMapping(t *testing.T) {
	s := newTestSurface()

	x, y := s.CanvasAt(14, 19)
	if x != 116 || y != 390 {
		t.Errorf("CanvasAt(14, 19) = (%v, %v), want (116, 390)", x, y)
	}
	if col, row := s.CellAt(x, y); col != 14 || row != 19 {
		t.Errorf("CellAt round trip = (%d, %d)", col, row)
	}
}

func TestSurfaceFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	s := newTestSurface()
	s.FillRect(0, 0, 16, 20, component.Red)   // cells 0-1, both halves
	s.FillRect(16, 0, 8, 10, component.White) // cell 2, top half only
	s.DrawText("A", 24, 0, component.White)   // cell 3
	s.Flush(screen)

	red := tcell.NewRGBColor(255, 0, 0)
	white := tcell.NewRGBColor(255, 255, 255)
	black := tcell.NewRGBColor(0, 0, 0)

	r, _, style, _ := screen.GetContent(0, 0)
	if _, bg, _ := style.Decompose(); r != ' ' || bg != red {
		t.Errorf("cell 0 = %q bg %v, want solid red", r, bg)
	}

	r, _, style, _ = screen.GetContent(2, 0)
	if fg, bg, _ := style.Decompose(); r != halfBlock || fg != white || bg != black {
		t.Errorf("cell 2 = %q fg %v bg %v, want white over black half block", r, fg, bg)
	}

	r, _, style, _ = screen.GetContent(3, 0)
	if fg, _, _ := style.Decompose(); r != 'A' || fg != white {
		t.Errorf("cell 3 = %q fg %v, want white A", r, fg)
	}
}
