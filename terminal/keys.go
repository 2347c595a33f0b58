package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockbreak/input"
)

// KeyTable maps tcell keys to logical keys
type KeyTable struct {
	// Special keys (arrows, Enter, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]input.Key

	// Unmodified rune bindings
	Runes map[rune]input.Key
}

// DefaultKeyTable binds arrows and h/l or a/d for movement, Enter or Space to
// start, p pause, Esc cancel, r retry, q or Ctrl+C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]input.Key{
			tcell.KeyLeft:   input.KeyLeft,
			tcell.KeyRight:  input.KeyRight,
			tcell.KeyEnter:  input.KeyStart,
			tcell.KeyEscape: input.KeyCancel,
			tcell.KeyCtrlC:  input.KeyQuit,
		},
		Runes: map[rune]input.Key{
			'h': input.KeyLeft,
			'a': input.KeyLeft,
			'l': input.KeyRight,
			'd': input.KeyRight,
			' ': input.KeyStart,
			'p': input.KeyPause,
			'P': input.KeyPause,
			'r': input.KeyRetry,
			'R': input.KeyRetry,
			'q': input.KeyQuit,
			'Q': input.KeyQuit,
		},
	}
}

// Lookup maps a tcell key event to a logical key, KeyNone when unbound.
// Runes with Ctrl or Alt held are unbound
func (t *KeyTable) Lookup(key tcell.Key, r rune, mod tcell.ModMask) input.Key {
	if key != tcell.KeyRune {
		return t.SpecialKeys[key]
	}
	if mod&(tcell.ModCtrl|tcell.ModAlt) != 0 {
		return input.KeyNone
	}
	return t.Runes[r]
}
