package terminal

import (
	"time"

	"github.com/lixenwraith/blockbreak/input"
)

// Hold windows for emulated key release. The first window covers the terminal's
// auto-repeat delay, the second its repeat interval
const (
	DefaultFirstHold  = 300 * time.Millisecond
	DefaultRepeatHold = 100 * time.Millisecond
)

// KeyLatch turns press-only terminal key events into held key state on a tracker
type KeyLatch struct {
	tracker *input.Tracker
	first   time.Duration
	repeat  time.Duration
	until   map[input.Key]time.Time
}

// NewKeyLatch creates a latch feeding tracker. Non-positive windows use the defaults
func NewKeyLatch(tracker *input.Tracker, first, repeat time.Duration) *KeyLatch {
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &KeyLatch{
		tracker: tracker,
		first:   first,
		repeat:  repeat,
		until:   make(map[input.Key]time.Time, 2),
	}
}

// Press marks k held until the hold window after now elapses
func (l *KeyLatch) Press(k input.Key, now time.Time) {
	window := l.first
	if _, held := l.until[k]; held {
		window = l.repeat
	}
	l.until[k] = now.Add(window)
	l.tracker.SetKeyDown(k)
}

// Release drops k immediately
func (l *KeyLatch) Release(k input.Key) {
	delete(l.until, k)
	l.tracker.SetKeyUp(k)
}

// Expire releases every key whose hold window ended at or before now
func (l *KeyLatch) Expire(now time.Time) {
	for k, deadline := range l.until {
		if !now.Before(deadline) {
			l.Release(k)
		}
	}
}

// Reset forgets all latched keys without touching the tracker
func (l *KeyLatch) Reset() {
	clear(l.until)
}

// Held reports whether k is latched
func (l *KeyLatch) Held(k input.Key) bool {
	_, ok := l.until[k]
	return ok
}
