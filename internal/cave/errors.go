// Package cave decodes legacy cave buffers into tile grids.
package cave

import "errors"

var (
	// ErrMalformedCave is returned when a buffer cannot be decoded into a
	// complete, in-bounds cave.
	ErrMalformedCave = errors.New("malformed cave")
	// ErrInvalidLevel is returned for a difficulty level outside 1..5.
	ErrInvalidLevel = errors.New("invalid difficulty level")
)
