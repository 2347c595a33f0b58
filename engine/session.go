package engine

import (
	"github.com/lixenwraith/blockbreak/component"
	"github.com/lixenwraith/blockbreak/config"
	"github.com/lixenwraith/blockbreak/vmath"
)

// Session is the complete simulation state of one play-through.
// It is owned by the frame driver and passed by reference to the flow
// controller and renderer; nothing here is global
type Session struct {
	cfg config.Config

	Ball       component.Ball
	Paddle     component.Paddle
	Enemies    []component.Enemy     // Fixed capacity, index order is scan order
	Explosions []component.Explosion // Insertion ordered, filtered on expiry

	Lives      int
	AliveCount int // Always equals the number of enemies with Alive set
}

// NewSession creates a session in its initial state
func NewSession(cfg config.Config) *Session {
	s := &Session{
		cfg:        cfg,
		Enemies:    make([]component.Enemy, cfg.Enemies.Count),
		Explosions: make([]component.Explosion, 0, cfg.Enemies.Count),
	}
	s.Reset()
	return s
}

// Config returns the tuning the session was built with
func (s *Session) Config() config.Config {
	return s.cfg
}

// Width returns the canvas width in pixels
func (s *Session) Width() float64 {
	return s.cfg.Canvas.Width
}

// Height returns the canvas height in pixels
func (s *Session) Height() float64 {
	return s.cfg.Canvas.Height
}

// Reset restores lives, revives every enemy, re-serves the ball, re-centers the paddle
// and drops all explosions
func (s *Session) Reset() {
	s.Lives = s.cfg.Session.Lives

	ec := s.cfg.Enemies
	if len(s.Enemies) != ec.Count {
		s.Enemies = make([]component.Enemy, ec.Count)
	}
	for i := range s.Enemies {
		col := i % ec.Columns
		row := i / ec.Columns
		s.Enemies[i] = component.Enemy{
			X:     float64(col)*ec.SpacingX + ec.OffsetX,
			Y:     float64(row)*ec.SpacingY + ec.OffsetY,
			W:     ec.Width,
			H:     ec.Height,
			Color: ec.Color.Color,
			Alive: true,
		}
	}
	s.AliveCount = ec.Count

	s.serveBall()

	pc := s.cfg.Paddle
	s.Paddle = component.Paddle{
		X:     pc.X,
		Y:     s.cfg.Canvas.Height - pc.BottomOffset,
		W:     pc.Width,
		H:     pc.Height,
		VX:    0,
		Color: pc.Color.Color,
	}

	s.Explosions = s.Explosions[:0]
}

// serveBall places the ball at its spawn point with the configured velocity
func (s *Session) serveBall() {
	bc := s.cfg.Ball
	s.Ball = component.Ball{
		X:      s.cfg.Canvas.Width * 0.25,
		Y:      s.cfg.Canvas.Height * 0.5,
		VX:     bc.Speed * bc.DirX,
		VY:     bc.Speed * bc.DirY,
		Radius: bc.Radius,
		Color:  bc.Color.Color,
	}
}

// clampPaddle keeps the paddle inside [0, width - paddle width]
func (s *Session) clampPaddle() {
	p := &s.Paddle
	p.X = vmath.Clamp(p.X, 0, s.cfg.Canvas.Width-p.W)
}

// DragPaddle handles a pointer-down. A press inside the paddle box moves the
// paddle to px minus the drag offset; presses elsewhere are ignored
func (s *Session) DragPaddle(px, py float64) bool {
	if !s.Paddle.Rect().Contains(px, py) {
		return false
	}
	s.Paddle.X = px - s.cfg.Paddle.DragOffset
	s.clampPaddle()
	return true
}

// CountAlive scans the enemy set. Used to check the AliveCount bookkeeping
func (s *Session) CountAlive() int {
	n := 0
	for i := range s.Enemies {
		if s.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// Cleared reports whether every enemy is destroyed
func (s *Session) Cleared() bool {
	return s.AliveCount == 0
}

// Dead reports whether the lives counter is exhausted
func (s *Session) Dead() bool {
	return s.Lives <= 0
}

// Snapshot is a read-only copy of entity state for rendering
type Snapshot struct {
	Width, Height float64

	Ball       component.Ball
	Paddle     component.Paddle
	Enemies    []component.Enemy
	Explosions []component.Explosion

	Lives      int
	AliveCount int

	ExplosionColor component.Color
}

// Snapshot copies the current entity state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Width:          s.cfg.Canvas.Width,
		Height:         s.cfg.Canvas.Height,
		Ball:           s.Ball,
		Paddle:         s.Paddle,
		Enemies:        make([]component.Enemy, len(s.Enemies)),
		Explosions:     make([]component.Explosion, len(s.Explosions)),
		Lives:          s.Lives,
		AliveCount:     s.AliveCount,
		ExplosionColor: s.cfg.Explosion.Color.Color,
	}
	copy(snap.Enemies, s.Enemies)
	copy(snap.Explosions, s.Explosions)
	return snap
}
