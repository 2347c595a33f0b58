package render

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator runs registered layers against a surface once per frame
type Orchestrator struct {
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an empty orchestrator
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Render clears the surface and draws every visible layer. It never mutates the scene
func (o *Orchestrator) Render(surf Surface, scene Scene) {
	surf.Clear()

	for _, entry := range o.layers {
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible(scene) {
			continue
		}
		entry.layer.Render(surf, scene)
	}
}

// NewGameRenderer registers the playfield layers in draw order: paddle, ball,
// enemies, explosions, pause overlay
func NewGameRenderer() *Orchestrator {
	o := NewOrchestrator()
	o.Register(PaddleLayer{}, PriorityPaddle)
	o.Register(BallLayer{}, PriorityBall)
	o.Register(EnemyLayer{}, PriorityEnemies)
	o.Register(ExplosionLayer{}, PriorityEffects)
	o.Register(PauseLayer{}, PriorityOverlay)
	return o
}
