package render

import (
	"fmt"

	"github.com/lixenwraith/blockbreak/component"
	"github.com/lixenwraith/blockbreak/mode"
)

// HUD is the one-way projection of session counters shown next to the playfield
type HUD struct {
	Lives  int
	Paused bool
	State  mode.State
	Reason mode.Reason
}

// LivesLabel formats the lives counter
func (h HUD) LivesLabel() string {
	return fmt.Sprintf("LIFE: %d", h.Lives)
}

// PauseLabel is "PAUSED" while paused, empty otherwise
func (h HUD) PauseLabel() string {
	if h.Paused {
		return pausedText
	}
	return ""
}

var (
	hudColor   = component.RGB(200, 200, 200)
	titleColor = component.RGB(126, 245, 225)
	hintColor  = component.RGB(150, 150, 150)
)

const hudMargin = 8

// DrawHUD prints lives and the pause label along the bottom edge of the canvas
func DrawHUD(surf Surface, hud HUD) {
	_, h := surf.Size()
	line := hud.LivesLabel()
	if label := hud.PauseLabel(); label != "" {
		line += "   " + label
	}
	surf.DrawText(line, hudMargin, h-hudMargin*3, hudColor)
}

// DrawMenu draws the start or game over screen for states outside play
func DrawMenu(surf Surface, hud HUD) {
	w, h := surf.Size()
	cx, cy := w/2, h/2

	surf.Clear()
	switch hud.State {
	case mode.StateStart:
		surf.DrawCenteredText("BLOCK BREAK", cx, cy-40, titleColor)
		surf.DrawCenteredText("Enter: start", cx, cy+10, textColor)
		surf.DrawCenteredText("Left/Right or click-drag the paddle, P: pause, Esc: menu, Q: quit", cx, cy+40, hintColor)
	case mode.StateGameOver:
		surf.DrawCenteredText(hud.Reason.Title(), cx, cy-40, titleColor)
		surf.DrawCenteredText(hud.Reason.Message(), cx, cy, textColor)
		surf.DrawCenteredText("R: retry, Esc: menu, Q: quit", cx, cy+40, hintColor)
	}
}
