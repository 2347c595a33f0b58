package frame

import (
	"github.com/lixenwraith/blockbreak/input"
	"github.com/lixenwraith/blockbreak/mode"
)

// CommandFor maps a logical key to the session command it issues.
// Movement keys and quit map to CommandNone
func CommandFor(k input.Key) mode.Command {
	switch k {
	case input.KeyStart:
		return mode.CommandStart
	case input.KeyPause:
		return mode.CommandTogglePause
	case input.KeyCancel:
		return mode.CommandCancel
	case input.KeyRetry:
		return mode.CommandRetry
	default:
		return mode.CommandNone
	}
}
