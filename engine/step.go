package engine

import (
	"github.com/lixenwraith/blockbreak/component"
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/vmath"
)

// StepResult reports what happened during one step
type StepResult struct {
	LifeLost bool
	Killed   int // Index of the enemy destroyed this step, -1 if none
}

// Step advances the simulation by dt seconds. Order matters: every check sees
// post-movement positions
func (s *Session) Step(dt float64, in input.Snapshot) StepResult {
	res := StepResult{Killed: -1}

	s.movePaddle(dt, in)
	res.LifeLost = s.moveBall(dt)
	res.Killed = s.collideEnemies()
	s.collidePaddle()
	s.decayExplosions(dt)

	return res
}

// movePaddle sets velocity from held keys, right overriding left when both are
// held. The clamp uses the pre-step position so a paddle pushed out of bounds is
// corrected before it moves
func (s *Session) movePaddle(dt float64, in input.Snapshot) {
	p := &s.Paddle
	speed := s.cfg.Paddle.MoveSpeed

	p.VX = 0
	if in.Left {
		p.VX = -speed
	}
	if in.Right {
		p.VX = speed
	}

	s.clampPaddle()
	p.X += p.VX * dt
}

// moveBall integrates the ball and resolves walls. The bottom wall costs a life
// and re-serves; the other three reflect. Checks are independent, bottom first
func (s *Session) moveBall(dt float64) bool {
	b := &s.Ball
	width, height := s.cfg.Canvas.Width, s.cfg.Canvas.Height

	b.X += b.VX * dt
	b.Y += b.VY * dt

	lost := false
	if b.Y >= height {
		s.serveBall()
		if s.Lives > 0 {
			s.Lives--
		}
		lost = true
	}

	if b.Y < 0 {
		b.Y = 0
		b.VY = -b.VY
	}

	if b.X < 0 {
		b.X = 0
		b.VX = -b.VX
	}

	if b.X+b.Radius > width {
		b.X = width - b.Radius
		b.VX = -b.VX
	}

	return lost
}

// collideEnemies destroys at most one enemy: the first alive one in index order
// that the ball overlaps. The ball keeps its velocity
func (s *Session) collideEnemies() int {
	b := &s.Ball
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if !e.Alive {
			continue
		}
		if !vmath.CircleRectOverlap(b.X, b.Y, b.Radius, e.Rect()) {
			continue
		}

		e.Alive = false
		s.AliveCount--

		cx, cy := e.Rect().Center()
		ec := s.cfg.Explosion
		s.Explosions = append(s.Explosions, component.Explosion{
			X:       cx,
			Y:       cy,
			Radius:  ec.Radius,
			Life:    ec.Life,
			MaxLife: ec.Life,
		})
		return i
	}
	return -1
}

// collidePaddle reflects the ball vertically on overlap. No positional
// correction, a fast ball may pass through in one step
func (s *Session) collidePaddle() {
	b := &s.Ball
	if vmath.CircleRectOverlap(b.X, b.Y, b.Radius, s.Paddle.Rect()) {
		b.VY = -b.VY
	}
}

// decayExplosions ages every explosion and filters out the expired ones
func (s *Session) decayExplosions(dt float64) {
	growth := s.cfg.Explosion.Growth
	kept := s.Explosions[:0]
	for _, ex := range s.Explosions {
		if ex.Decay(dt, growth) {
			kept = append(kept, ex)
		}
	}
	s.Explosions = kept
}
