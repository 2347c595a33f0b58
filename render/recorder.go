package render

import "github.com/lixenwraith/blockbreak/component"

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpOverlay
	OpText
	OpCenteredText
)

// Op is one recorded draw call. Unused fields are zero
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	R     float64
	Alpha float64
	Color component.Color
	Text  string
}

// Recorder is a Surface that keeps the draw calls of the current frame.
// Hosts that separate update from draw record in update and replay in draw
type Recorder struct {
	width, height float64
	ops           []Op
}

// NewRecorder creates a recorder for a canvas of the given size
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		width:  width,
		height: height,
		ops:    make([]Op, 0, 64),
	}
}

// Ops returns the recorded calls since the last Clear
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Replay issues the recorded calls against another surface
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpRect:
			dst.FillRect(op.X, op.Y, op.W, op.H, op.Color)
		case OpCircle:
			dst.FillCircle(op.X, op.Y, op.R, op.Color)
		case OpOverlay:
			dst.FillOverlay(op.Alpha, op.Color)
		case OpText:
			dst.DrawText(op.Text, op.X, op.Y, op.Color)
		case OpCenteredText:
			dst.DrawCenteredText(op.Text, op.X, op.Y, op.Color)
		}
	}
}

func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

// Clear drops the previous frame
func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, w, h float64, c component.Color) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c component.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) FillOverlay(alpha float64, c component.Color) {
	r.ops = append(r.ops, Op{Kind: OpOverlay, Alpha: alpha, Color: c})
}

func (r *Recorder) DrawText(s string, x, y float64, c component.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

func (r *Recorder) DrawCenteredText(s string, x, y float64, c component.Color) {
	r.ops = append(r.ops, Op{Kind: OpCenteredText, X: x, Y: y, Text: s, Color: c})
}
