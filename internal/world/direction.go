package world

// Direction is one of the eight compass octants, clockwise from north.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the size of the direction table.
const NumDirections = 8

var (
	dirX = [NumDirections]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirY = [NumDirections]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// Valid reports whether d indexes the direction table.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Delta returns the unit step for d. Invalid directions return (0, 0).
func (d Direction) Delta() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	return dirX[d], dirY[d]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}
