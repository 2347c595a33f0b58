package vmath

import "golang.org/x/exp/constraints"

// Rect is an axis-aligned bounding box in canvas pixels, origin top-left, y-down
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle from its top-left corner and size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point lies inside the rectangle, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// RectOverlap reports whether two boxes overlap. Touching edges count as overlap
func RectOverlap(a, b Rect) bool {
	return a.Right() >= b.X &&
		a.X <= b.Right() &&
		a.Bottom() >= b.Y &&
		a.Y <= b.Bottom()
}

// CircleBounds returns the bounding box of a circle
func CircleBounds(cx, cy, radius float64) Rect {
	return Rect{X: cx - radius, Y: cy - radius, W: radius * 2, H: radius * 2}
}

// CircleRectOverlap tests a circle against a box using the circle's bounding box.
// Corners are not rounded off: a ball diagonally near a corner still counts as a hit
func CircleRectOverlap(cx, cy, radius float64, rect Rect) bool {
	return RectOverlap(CircleBounds(cx, cy, radius), rect)
}

// Clamp restricts v to [lo, hi]. When hi < lo the lower bound wins
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
