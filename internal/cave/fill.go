package cave

import "github.com/samdwyer/cavedash/internal/world"

// pickTile chooses the fill symbol for a drawn byte r. Every threshold r is
// below overrides the previous choice, so the last match wins.
func pickTile(r uint8, objects [4]world.Tile, thresholds [4]uint8) world.Tile {
	t := world.TileDirt
	for i := range objects {
		if r < thresholds[i] {
			t = objects[i]
		}
	}
	return t
}

// RandomFill fills rows 1..Height-2 of g from the header's seeded sequence,
// one step per cell in row-major order, then frames the playfield in steel.
func RandomFill(g *world.Grid, h Header) error {
	seq := NewSequence(h.Seed)
	for y := 1; y < h.Height-1; y++ {
		for x := 0; x < h.Width; x++ {
			t := pickTile(seq.Next(), h.RandomObjects, h.RandomThresholds)
			if err := g.Put(x, y, t); err != nil {
				return err
			}
		}
	}
	return g.BorderRect(h.Playfield(), world.TileSteel)
}
