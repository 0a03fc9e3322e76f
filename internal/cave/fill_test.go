package cave

import (
	"testing"

	"github.com/samdwyer/cavedash/internal/world"
)

func TestPickTileLastMatchWins(t *testing.T) {
	objects := [4]world.Tile{world.TileEmpty, world.TileBoulder, world.TileDiamond, world.TileBrick}
	thresholds := [4]uint8{50, 100, 150, 200}

	tests := []struct {
		r    uint8
		want world.Tile
	}{
		{0, world.TileBrick},
		{49, world.TileBrick},
		{120, world.TileBrick},
		{160, world.TileBrick},
		{199, world.TileBrick},
		{200, world.TileDirt},
		{255, world.TileDirt},
	}
	for _, tt := range tests {
		if got := pickTile(tt.r, objects, thresholds); got != tt.want {
			t.Errorf("pickTile(%d) = %q, want %q", tt.r, got, tt.want)
		}
	}

	// Descending thresholds make the ordering visible.
	desc := [4]uint8{200, 150, 100, 50}
	tests = []struct {
		r    uint8
		want world.Tile
	}{
		{10, world.TileBrick},
		{60, world.TileDiamond},
		{120, world.TileBoulder},
		{160, world.TileEmpty},
		{210, world.TileDirt},
	}
	for _, tt := range tests {
		if got := pickTile(tt.r, objects, desc); got != tt.want {
			t.Errorf("pickTile(%d) with descending thresholds = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestRandomFill(t *testing.T) {
	h, err := ParseHeader(blankCave())
	if err != nil {
		t.Fatal(err)
	}
	// Seed 0 yields 0x00, 0x09, 0xDC for the first three cells of row 1.
	h.RandomObjects = [4]world.Tile{world.TileDiamond, world.TileEmpty, world.TileEmpty, world.TileEmpty}
	h.RandomThresholds = [4]uint8{0x0A, 0, 0, 0}

	g := world.NewGrid(h.Width, h.Height, world.TileEmpty)
	if err := RandomFill(g, h); err != nil {
		t.Fatalf("RandomFill: %v", err)
	}

	if g.Get(1, 1) != world.TileDiamond {
		t.Errorf("(1,1) = %q, want diamond from draw 0x09", g.Get(1, 1))
	}
	if g.Get(2, 1) != world.TileDirt {
		t.Errorf("(2,1) = %q, want dirt from draw 0xDC", g.Get(2, 1))
	}
	for x := 0; x < h.Width; x++ {
		if g.Get(x, 0) != world.TileSteel || g.Get(x, h.Height-1) != world.TileSteel {
			t.Fatalf("column %d missing top/bottom border", x)
		}
	}
	for y := 0; y < h.Height; y++ {
		if g.Get(0, y) != world.TileSteel || g.Get(h.Width-1, y) != world.TileSteel {
			t.Fatalf("row %d missing left/right border", y)
		}
	}
}

func TestRandomFillZeroThresholdsIsAllDirt(t *testing.T) {
	h, err := ParseHeader(blankCave())
	if err != nil {
		t.Fatal(err)
	}
	g := world.NewGrid(h.Width, h.Height, world.TileEmpty)
	if err := RandomFill(g, h); err != nil {
		t.Fatal(err)
	}
	interior := (h.Width - 2) * (h.Height - 2)
	if got := g.Count(world.TileDirt); got != interior {
		t.Errorf("dirt count = %d, want %d", got, interior)
	}
}
