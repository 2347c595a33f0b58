package render

import (
	"math"

	"github.com/lixenwraith/blockbreak/engine"
)

// Scene is the read-only frame input for layers
type Scene struct {
	engine.Snapshot
	Paused bool
}

// round matches canvas pixel snapping: halves round up
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}
