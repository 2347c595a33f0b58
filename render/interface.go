package render

import "github.com/lixenwraith/blockbreak/component"

// Surface is the drawing target. Coordinates are canvas pixels, origin top-left, y-down
type Surface interface {
	// Size returns the canvas dimensions the surface maps onto
	Size() (width, height float64)
	// Clear starts a new frame
	Clear()
	FillRect(x, y, w, h float64, c component.Color)
	FillCircle(cx, cy, r float64, c component.Color)
	// FillOverlay blends a color over the whole surface at the given opacity
	FillOverlay(alpha float64, c component.Color)
	// DrawText draws left-aligned text with its top-left corner at (x, y)
	DrawText(s string, x, y float64, c component.Color)
	// DrawCenteredText draws text centered on (x, y)
	DrawCenteredText(s string, x, y float64, c component.Color)
}

// Layer is one stage of the frame, drawn in priority order
type Layer interface {
	Render(surf Surface, scene Scene)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible(scene Scene) bool
}
