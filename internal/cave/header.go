package cave

import (
	"fmt"

	"github.com/samdwyer/cavedash/internal/world"
)

// Fixed offsets of the legacy header.
const (
	offsetNumber        = 0x00
	offsetMagicWallTime = 0x01
	offsetDiamondValue  = 0x02
	offsetExtraValue    = 0x03
	offsetSeeds         = 0x04
	offsetDiamonds      = 0x09
	offsetTimes         = 0x0E
	offsetColors        = 0x13
	offsetObjects       = 0x18
	offsetThresholds    = 0x1C

	// HeaderSize is the minimum buffer length; the command stream starts here.
	HeaderSize = 0x20

	// Levels is the number of difficulty levels a cave carries.
	Levels = 5
)

// Header is the parsed fixed-offset part of a cave buffer.
type Header struct {
	Width  int
	Height int
	Level  int

	Number            uint8
	MagicWallTime     uint8
	DiamondValue      uint8
	ExtraDiamondValue uint8
	Seed              uint8
	DiamondsNeeded    uint8
	Time              uint8
	Colors            [5]uint8

	RandomObjects    [4]world.Tile
	RandomThresholds [4]uint8
}

// ParseHeader reads the header for difficulty level 1.
func ParseHeader(data []byte) (Header, error) {
	return ParseHeaderLevel(data, 1)
}

// ParseHeaderLevel reads the header, taking the per-level fields
// (seed, diamonds needed, time) for the given difficulty level.
func ParseHeaderLevel(data []byte, level int) (Header, error) {
	if level < 1 || level > Levels {
		return Header{}, fmt.Errorf("level %d: %w", level, ErrInvalidLevel)
	}
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrMalformedCave, HeaderSize, len(data))
	}

	h := Header{
		Width:             world.CaveWidth,
		Height:            world.CaveHeight,
		Level:             level,
		Number:            data[offsetNumber],
		MagicWallTime:     data[offsetMagicWallTime],
		DiamondValue:      data[offsetDiamondValue],
		ExtraDiamondValue: data[offsetExtraValue],
		Seed:              data[offsetSeeds+level-1],
		DiamondsNeeded:    data[offsetDiamonds+level-1],
		Time:              data[offsetTimes+level-1],
	}
	copy(h.Colors[:], data[offsetColors:offsetColors+len(h.Colors)])
	for i := range h.RandomObjects {
		h.RandomObjects[i] = world.FromLegacy(data[offsetObjects+i])
		h.RandomThresholds[i] = data[offsetThresholds+i]
	}
	return h, nil
}

// Playfield returns the rectangle the cave occupies.
func (h Header) Playfield() world.Rect {
	return world.Rect{Width: h.Width, Height: h.Height}
}
