package render

// Priority determines layer order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityPaddle
	PriorityBall
	PriorityEnemies
	PriorityEffects
	PriorityOverlay
	PriorityUI
)
