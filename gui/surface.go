package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/blockbreak/component"
)

// Surface draws onto an ebiten image whose size equals the canvas
type Surface struct {
	img  *ebiten.Image
	face font.Face
	bg   component.Color
}

// NewSurface wraps dst for one frame of drawing
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{
		img:  dst,
		face: basicfont.Face7x13,
		bg:   component.Black,
	}
}

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear() {
	s.img.Fill(s.bg.NRGBA())
}

func (s *Surface) FillRect(x, y, w, h float64, c component.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c component.Color) {
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.NRGBA(), true)
}

func (s *Surface) FillOverlay(alpha float64, c component.Color) {
	w, h := s.Size()
	vector.DrawFilledRect(s.img, 0, 0, float32(w), float32(h), c.WithAlpha(alpha).NRGBA(), false)
}

// DrawText places the text's top-left corner at (x, y); text.Draw takes the baseline
func (s *Surface) DrawText(str string, x, y float64, c component.Color) {
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.img, str, s.face, int(x), int(y)+ascent, c.NRGBA())
}

func (s *Surface) DrawCenteredText(str string, x, y float64, c component.Color) {
	b := text.BoundString(s.face, str)
	tx := int(x) - b.Dx()/2 - b.Min.X
	ty := int(y) - (b.Min.Y+b.Max.Y)/2
	text.Draw(s.img, str, s.face, tx, ty, c.NRGBA())
}
