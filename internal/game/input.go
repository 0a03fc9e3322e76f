package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavedash/internal/world"
)

// Keys is the input read from one key event.
type Keys struct {
	Dir   world.Direction
	Moved bool // Dir is meaningful
	Fire  bool
	Esc   bool
	Key   rune // Any other rune key, 0 if none
}

// ReadKey maps a tcell key event to Keys.
func ReadKey(ev *tcell.EventKey) Keys {
	var k Keys

	switch ev.Key() {
	case tcell.KeyUp:
		k.Dir, k.Moved = world.North, true
	case tcell.KeyDown:
		k.Dir, k.Moved = world.South, true
	case tcell.KeyLeft:
		k.Dir, k.Moved = world.West, true
	case tcell.KeyRight:
		k.Dir, k.Moved = world.East, true
	case tcell.KeyEnter:
		k.Fire = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		k.Esc = true
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'k', 'K':
			k.Dir, k.Moved = world.North, true
		case 'j', 'J':
			k.Dir, k.Moved = world.South, true
		case 'h', 'H':
			k.Dir, k.Moved = world.West, true
		case 'l', 'L':
			k.Dir, k.Moved = world.East, true
		case 'q', 'Q':
			k.Esc = true
		default:
			k.Key = r
		}
	}
	return k
}
