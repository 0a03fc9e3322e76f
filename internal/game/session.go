package game

import (
	"errors"

	"github.com/samdwyer/cavedash/internal/cave"
	"github.com/samdwyer/cavedash/internal/entity"
	"github.com/samdwyer/cavedash/internal/world"
)

// ErrNoSpawn is returned when a decoded cave has nowhere to put the player.
var ErrNoSpawn = errors.New("cave has no spawn point")

// Session is one attempt at a decoded cave. It owns the grid from here on.
type Session struct {
	Cave   *cave.Cave
	Grid   *world.Grid
	Player *entity.Player
	State  State
	Moves  int
}

// NewSession places the player on the cave's spawn point.
func NewSession(c *cave.Cave) (*Session, error) {
	x, y, ok := c.Spawn()
	if !ok {
		return nil, ErrNoSpawn
	}
	p := entity.NewPlayer(x, y)
	if err := c.Grid.Put(x, y, p.Symbol); err != nil {
		return nil, err
	}
	return &Session{
		Cave:   c,
		Grid:   c.Grid,
		Player: p,
		State:  StatePlaying,
	}, nil
}

// Needed returns how many diamonds open the exit.
func (s *Session) Needed() int {
	return int(s.Cave.Header.DiamondsNeeded)
}

// ExitOpen reports whether enough diamonds have been collected.
func (s *Session) ExitOpen() bool {
	return s.Player.Diamonds >= s.Needed()
}

// Move tries to step the player one cell in d and reports whether it moved.
func (s *Session) Move(d world.Direction) bool {
	dx, dy, ok := cardinal(d)
	if !ok || s.State != StatePlaying {
		return false
	}
	tx, ty := s.Player.X+dx, s.Player.Y+dy

	switch target := s.Grid.Get(tx, ty); target {
	case world.TileEmpty, world.TileDirt:
	case world.TileDiamond:
		s.Player.Diamonds++
	case world.TileExit:
		if !s.ExitOpen() {
			return false
		}
		s.State = StateComplete
	case world.TileBoulder:
		if dy != 0 || s.Grid.Get(tx+dx, ty) != world.TileEmpty {
			return false
		}
		_ = s.Grid.Put(tx+dx, ty, world.TileBoulder)
	case world.TileButterfly:
		s.State = StateDead
		return false
	default:
		return false
	}

	_ = s.Grid.Put(s.Player.X, s.Player.Y, world.TileEmpty)
	s.Player.Move(dx, dy)
	_ = s.Grid.Put(s.Player.X, s.Player.Y, s.Player.Symbol)
	s.Moves++
	return true
}

// Snap clears or collects the neighbouring cell in d without moving.
func (s *Session) Snap(d world.Direction) bool {
	dx, dy, ok := cardinal(d)
	if !ok || s.State != StatePlaying {
		return false
	}
	tx, ty := s.Player.X+dx, s.Player.Y+dy

	switch s.Grid.Get(tx, ty) {
	case world.TileDirt:
	case world.TileDiamond:
		s.Player.Diamonds++
	default:
		return false
	}
	_ = s.Grid.Put(tx, ty, world.TileEmpty)
	s.Moves++
	return true
}

// cardinal restricts player movement to the four main directions.
func cardinal(d world.Direction) (dx, dy int, ok bool) {
	switch d {
	case world.North, world.East, world.South, world.West:
		dx, dy = d.Delta()
		return dx, dy, true
	}
	return 0, 0, false
}
