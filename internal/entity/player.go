// Package entity provides the player controlled in a cave.
package entity

import "github.com/samdwyer/cavedash/internal/world"

// Player is the digger moving through the cave.
type Player struct {
	X, Y     int        // Current position in the cave
	Symbol   world.Tile // Tile written to the grid at the player's position
	Diamonds int        // Diamonds collected so far
}

// NewPlayer creates a player at the given position.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Symbol: world.TilePlayer,
	}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
