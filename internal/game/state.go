// Package game provides the game loop that plays a decoded cave.
package game

// State represents the current game state.
type State int

const (
	// StatePlaying is the default state while the player is in the cave.
	StatePlaying State = iota
	// StateComplete means the player reached an open exit.
	StateComplete
	// StateDead means the player ran into a butterfly.
	StateDead
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateComplete:
		return "complete"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}
