package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavedash/internal/world"
)

func TestReadKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Keys
	}{
		{"up", tcell.KeyUp, 0, Keys{Dir: world.North, Moved: true}},
		{"down", tcell.KeyDown, 0, Keys{Dir: world.South, Moved: true}},
		{"left", tcell.KeyLeft, 0, Keys{Dir: world.West, Moved: true}},
		{"right", tcell.KeyRight, 0, Keys{Dir: world.East, Moved: true}},
		{"k", tcell.KeyRune, 'k', Keys{Dir: world.North, Moved: true}},
		{"J", tcell.KeyRune, 'J', Keys{Dir: world.South, Moved: true}},
		{"h", tcell.KeyRune, 'h', Keys{Dir: world.West, Moved: true}},
		{"l", tcell.KeyRune, 'l', Keys{Dir: world.East, Moved: true}},
		{"enter", tcell.KeyEnter, 0, Keys{Fire: true}},
		{"escape", tcell.KeyEscape, 0, Keys{Esc: true}},
		{"ctrl-c", tcell.KeyCtrlC, 0, Keys{Esc: true}},
		{"q", tcell.KeyRune, 'q', Keys{Esc: true}},
		{"space", tcell.KeyRune, ' ', Keys{Key: ' '}},
		{"r", tcell.KeyRune, 'r', Keys{Key: 'r'}},
		{"tab", tcell.KeyTab, 0, Keys{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if got != tt.want {
				t.Errorf("ReadKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
