package input

// Tracker holds level-triggered key state and the last pointer activity.
// Hosts write to it as events arrive; the frame driver reads it once per frame
type Tracker struct {
	held [keyCount]bool

	pointerX, pointerY float64

	clicked        bool
	clickX, clickY float64
}

// NewTracker creates an empty input tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetKeyDown marks a key as held
func (t *Tracker) SetKeyDown(k Key) {
	if k < keyCount {
		t.held[k] = true
	}
}

// SetKeyUp marks a key as released
func (t *Tracker) SetKeyUp(k Key) {
	if k < keyCount {
		t.held[k] = false
	}
}

// IsKeyDown reports whether a key is currently held
func (t *Tracker) IsKeyDown(k Key) bool {
	if k >= keyCount {
		return false
	}
	return t.held[k]
}

// MovePointer records the latest pointer position in canvas coordinates
func (t *Tracker) MovePointer(x, y float64) {
	t.pointerX, t.pointerY = x, y
}

// PointerPosition returns the latest pointer position
func (t *Tracker) PointerPosition() (float64, float64) {
	return t.pointerX, t.pointerY
}

// Click records a pointer-down. A later click before the next poll replaces it
func (t *Tracker) Click(x, y float64) {
	t.pointerX, t.pointerY = x, y
	t.clicked = true
	t.clickX, t.clickY = x, y
}

// PointerClicked returns the pending click and consumes it
func (t *Tracker) PointerClicked() (x, y float64, ok bool) {
	if !t.clicked {
		return 0, 0, false
	}
	t.clicked = false
	return t.clickX, t.clickY, true
}

// Reset releases all keys and drops any pending click
func (t *Tracker) Reset() {
	t.held = [keyCount]bool{}
	t.clicked = false
}

// Snapshot is the per-frame view of input consumed by the simulation
type Snapshot struct {
	Left, Right bool

	PointerX, PointerY float64

	Clicked        bool
	ClickX, ClickY float64
}

// Snapshot captures the current state and consumes the pending click
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{
		Left:     t.held[KeyLeft],
		Right:    t.held[KeyRight],
		PointerX: t.pointerX,
		PointerY: t.pointerY,
	}
	s.ClickX, s.ClickY, s.Clicked = t.PointerClicked()
	return s
}
