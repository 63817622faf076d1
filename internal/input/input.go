// Package input translates raw terminal key presses into the keys the
// simulation understands.
package input

import (
	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

// Key is the most recent key press handed to a tick.
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyQuit
	KeyOther // pressed, but not bound to anything
)

var keyNames = [...]string{
	KeyNone:  "none",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
	KeyQuit:  "quit",
	KeyOther: "other",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// FromEvent maps a tcell key event to a Key.
func FromEvent(ev *tcell.EventKey) Key {
	if ev == nil {
		return KeyNone
	}
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
	default:
		return KeyOther
	}

	// Rune keys.
	switch ev.Rune() {
	case 'h', 'H':
		return KeyLeft
	case 'l', 'L':
		return KeyRight
	case 'k', 'K':
		return KeyUp
	case 'j', 'J':
		return KeyDown
	case 'q', 'Q':
		return KeyQuit
	}
	return KeyOther
}

// Delta converts a directional key to a unit step. ok is false for every
// other key.
func Delta(k Key) (d gamemap.Point, ok bool) {
	switch k {
	case KeyLeft:
		return gamemap.West, true
	case KeyRight:
		return gamemap.East, true
	case KeyUp:
		return gamemap.North, true
	case KeyDown:
		return gamemap.South, true
	}
	return gamemap.Point{}, false
}
