package input

// Key is a logical key, decoupled from any host's key codes
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyPause
	KeyCancel
	KeyStart
	KeyRetry
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "None",
	KeyLeft:   "ArrowLeft",
	KeyRight:  "ArrowRight",
	KeyPause:  "Pause",
	KeyCancel: "Escape",
	KeyStart:  "Start",
	KeyRetry:  "Retry",
	KeyQuit:   "Quit",
}

// String returns the logical key name
func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// KeyFromName maps a logical key name back to its Key, KeyNone if unknown
func KeyFromName(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return Key(k)
		}
	}
	return KeyNone
}
