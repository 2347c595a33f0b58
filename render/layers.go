package render

import "github.com/lixenwraith/blockbreak/component"

var (
	overlayColor = component.Black
	textColor    = component.White
)

const (
	overlayAlpha = 0.5
	pausedText   = "PAUSED"
)

// PaddleLayer draws the paddle at its rounded position
type PaddleLayer struct{}

func (PaddleLayer) Render(surf Surface, scene Scene) {
	p := scene.Paddle
	surf.FillRect(round(p.X), round(p.Y), p.W, p.H, p.Color)
}

// BallLayer draws the ball
type BallLayer struct{}

func (BallLayer) Render(surf Surface, scene Scene) {
	b := scene.Ball
	surf.FillCircle(round(b.X), round(b.Y), b.Radius, b.Color)
}

// EnemyLayer draws alive enemies; dead slots are skipped
type EnemyLayer struct{}

func (EnemyLayer) Render(surf Surface, scene Scene) {
	for i := range scene.Enemies {
		e := &scene.Enemies[i]
		if !e.Alive {
			continue
		}
		surf.FillRect(round(e.X), round(e.Y), e.W, e.H, e.Color)
	}
}

// ExplosionLayer draws explosions faded by remaining life
type ExplosionLayer struct{}

func (ExplosionLayer) Render(surf Surface, scene Scene) {
	for _, ex := range scene.Explosions {
		surf.FillCircle(ex.X, ex.Y, ex.Radius, scene.ExplosionColor.WithAlpha(ex.Alpha()))
	}
}

// PauseLayer dims the frame and prints PAUSED at the canvas center
type PauseLayer struct{}

func (PauseLayer) IsVisible(scene Scene) bool {
	return scene.Paused
}

func (PauseLayer) Render(surf Surface, scene Scene) {
	surf.FillOverlay(overlayAlpha, overlayColor)
	surf.DrawCenteredText(pausedText, scene.Width/2, scene.Height/2, textColor)
}
