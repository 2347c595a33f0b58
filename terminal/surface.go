package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockbreak/component"
)

const halfBlock = '▀'

type textCell struct {
	r   rune
	fg  component.Color
	set bool
}

// Surface rasterizes canvas draw calls into a grid of half-block cells
type Surface struct {
	canvasW, canvasH float64

	cols, rows int
	pixels     []component.Color // cols x rows*2, row-major
	text       []textCell        // cols x rows
	background component.Color
}

// NewSurface creates a surface mapping a canvas of the given size onto cols x rows cells
func NewSurface(canvasW, canvasH float64, cols, rows int) *Surface {
	s := &Surface{
		canvasW:    canvasW,
		canvasH:    canvasH,
		background: component.Black,
	}
	s.Resize(cols, rows)
	return s
}

// Resize adjusts the cell grid, reallocating only if capacity is insufficient
func (s *Surface) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	size := cols * rows
	if cap(s.text) < size {
		s.text = make([]textCell, size)
		s.pixels = make([]component.Color, size*2)
	} else {
		s.text = s.text[:size]
		s.pixels = s.pixels[:size*2]
	}
	s.cols, s.rows = cols, rows
	s.Clear()
}

// Grid returns the cell dimensions
func (s *Surface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Surface) Size() (float64, float64) {
	return s.canvasW, s.canvasH
}

// Clear resets all pixels to the background and drops text using exponential copy
func (s *Surface) Clear() {
	if len(s.pixels) == 0 {
		return
	}
	s.pixels[0] = s.background
	for filled := 1; filled < len(s.pixels); filled *= 2 {
		copy(s.pixels[filled:], s.pixels[:filled])
	}
	s.text[0] = textCell{}
	for filled := 1; filled < len(s.text); filled *= 2 {
		copy(s.text[filled:], s.text[:filled])
	}
}

// pixel grid dimensions
func (s *Surface) gridW() int { return s.cols }
func (s *Surface) gridH() int { return s.rows * 2 }

// span returns the pixel index range whose centers fall in [lo, hi) along one axis.
// A non-empty interval always covers at least the pixel holding its midpoint
func span(lo, hi, canvas float64, n int) (int, int) {
	if n == 0 || hi <= lo {
		return 0, -1
	}
	scale := float64(n) / canvas
	first := int(math.Ceil(lo*scale - 0.5))
	last := int(math.Ceil(hi*scale-0.5)) - 1
	if last < first {
		first = int(math.Floor((lo + hi) / 2 * scale))
		last = first
	}
	return max(first, 0), min(last, n-1)
}

func (s *Surface) plot(i, j int, c component.Color) {
	idx := j*s.gridW() + i
	if c.A == 255 {
		s.pixels[idx] = c
		return
	}
	s.pixels[idx] = c.Over(s.pixels[idx])
}

func (s *Surface) FillRect(x, y, w, h float64, c component.Color) {
	if c.A == 0 {
		return
	}
	i0, i1 := span(x, x+w, s.canvasW, s.gridW())
	j0, j1 := span(y, y+h, s.canvasH, s.gridH())
	for j := j0; j <= j1; j++ {
		for i := i0; i <= i1; i++ {
			s.plot(i, j, c)
		}
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c component.Color) {
	if c.A == 0 || r <= 0 {
		return
	}
	gw, gh := s.gridW(), s.gridH()
	if gw == 0 || gh == 0 {
		return
	}
	pw, ph := s.canvasW/float64(gw), s.canvasH/float64(gh)

	i0, i1 := span(cx-r, cx+r, s.canvasW, gw)
	j0, j1 := span(cy-r, cy+r, s.canvasH, gh)
	hit := false
	for j := j0; j <= j1; j++ {
		py := (float64(j)+0.5)*ph - cy
		for i := i0; i <= i1; i++ {
			px := (float64(i)+0.5)*pw - cx
			if px*px+py*py <= r*r {
				s.plot(i, j, c)
				hit = true
			}
		}
	}

	// Circles smaller than a pixel still show up
	if !hit {
		i, j := int(cx/pw), int(cy/ph)
		if i >= 0 && i < gw && j >= 0 && j < gh {
			s.plot(i, j, c)
		}
	}
}

func (s *Surface) FillOverlay(alpha float64, c component.Color) {
	tint := c.WithAlpha(alpha)
	if tint.A == 0 {
		return
	}
	for i := range s.pixels {
		s.pixels[i] = tint.Over(s.pixels[i])
	}
	for i := range s.text {
		if s.text[i].set {
			s.text[i].fg = tint.Over(s.text[i].fg)
		}
	}
}

// CellAt maps a canvas point to the cell containing it
func (s *Surface) CellAt(x, y float64) (col, row int) {
	if s.canvasW <= 0 || s.canvasH <= 0 {
		return 0, 0
	}
	return int(math.Floor(x * float64(s.cols) / s.canvasW)), int(math.Floor(y * float64(s.rows) / s.canvasH))
}

// CanvasAt maps a cell to the canvas point at its center
func (s *Surface) CanvasAt(col, row int) (x, y float64) {
	if s.cols == 0 || s.rows == 0 {
		return 0, 0
	}
	return (float64(col) + 0.5) * s.canvasW / float64(s.cols), (float64(row) + 0.5) * s.canvasH / float64(s.rows)
}

func (s *Surface) putText(str string, col, row int, c component.Color) {
	if row < 0 || row >= s.rows {
		return
	}
	for _, r := range str {
		if col >= 0 && col < s.cols {
			s.text[row*s.cols+col] = textCell{r: r, fg: c, set: true}
		}
		col++
	}
}

func (s *Surface) DrawText(str string, x, y float64, c component.Color) {
	col, row := s.CellAt(x, y)
	s.putText(str, col, row, c)
}

func (s *Surface) DrawCenteredText(str string, x, y float64, c component.Color) {
	col, row := s.CellAt(x, y)
	s.putText(str, col-len([]rune(str))/2, row, c)
}

// Pixel returns the color of the half-cell pixel at (i, j)
func (s *Surface) Pixel(i, j int) component.Color {
	if i < 0 || i >= s.gridW() || j < 0 || j >= s.gridH() {
		return s.background
	}
	return s.pixels[j*s.gridW()+i]
}

// Text returns the text rune placed on a cell, 0 if none
func (s *Surface) Text(col, row int) rune {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return 0
	}
	return s.text[row*s.cols+col].r
}

func tcellColor(c component.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Flush copies the cell grid onto the screen. The caller shows the screen
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[(2*row)*s.cols+col]
			bottom := s.pixels[(2*row+1)*s.cols+col]

			if t := s.text[row*s.cols+col]; t.set {
				style := tcell.StyleDefault.Foreground(tcellColor(t.fg)).Background(tcellColor(top))
				screen.SetContent(col, row, t.r, nil, style)
				continue
			}

			if top == bottom {
				screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcellColor(top)))
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}
