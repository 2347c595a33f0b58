package component

import "github.com/lixenwraith/blockbreak/vmath"

// Ball is the single bouncing projectile, position is its center
type Ball struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  Color
}

// Bounds returns the ball's bounding box used for every collision test
func (b *Ball) Bounds() vmath.Rect {
	return vmath.CircleBounds(b.X, b.Y, b.Radius)
}

// Paddle is the player-controlled deflector, position is its top-left corner
type Paddle struct {
	X, Y  float64
	W, H  float64
	VX    float64
	Color Color
}

// Rect returns the paddle's box
func (p *Paddle) Rect() vmath.Rect {
	return vmath.NewRect(p.X, p.Y, p.W, p.H)
}

// Enemy is a stationary destructible block. Dead enemies stay in their slot
type Enemy struct {
	X, Y  float64
	W, H  float64
	Color Color
	Alive bool
}

// Rect returns the enemy's box
func (e *Enemy) Rect() vmath.Rect {
	return vmath.NewRect(e.X, e.Y, e.W, e.H)
}

// Explosion is a short-lived expanding ring spawned where an enemy died
type Explosion struct {
	X, Y    float64
	Radius  float64
	Life    float64
	MaxLife float64
}

// Decay grows the radius and drains life by dt, returns false once expired
func (e *Explosion) Decay(dt, growth float64) bool {
	e.Life -= dt
	e.Radius += growth * dt
	return e.Life > 0
}

// Alpha is the remaining life fraction, never negative
func (e Explosion) Alpha() float64 {
	if e.MaxLife <= 0 {
		return 0
	}
	return max(e.Life/e.MaxLife, 0)
}
