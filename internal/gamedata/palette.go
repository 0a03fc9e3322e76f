package gamedata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cavedash/internal/world"
)

// TileDef describes how one tile is drawn, loaded from tiles.json.
type TileDef struct {
	Tile  string `json:"tile"`  // Plain-text tile symbol (e.g., "$")
	Name  string `json:"name"`  // Tile name (e.g., "diamond")
	Glyph string `json:"glyph"` // Character drawn on screen
	Color string `json:"color"` // Hex color code (e.g., "#40E0FF")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Style is the resolved screen appearance of a tile.
type Style struct {
	Glyph rune
	Color tcell.Color
}

// Palette maps tiles to their screen appearance.
type Palette map[world.Tile]Style

// LoadPalette loads the tile palette from the embedded tiles.json file.
func LoadPalette() (Palette, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	p := make(Palette, len(file.Tiles))
	for i := range file.Tiles {
		def := &file.Tiles[i]
		if len(def.Tile) != 1 {
			return nil, fmt.Errorf("tiles.json entry %q: tile must be one byte, got %q", def.Name, def.Tile)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tiles.json entry %q: %w", def.Name, err)
		}
		p[world.Tile(def.Tile[0])] = Style{Glyph: def.GlyphRune(), Color: color}
	}
	return p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup returns the style for t, falling back to the tile's own symbol in white.
func (p Palette) Lookup(t world.Tile) Style {
	if s, ok := p[t]; ok {
		return s
	}
	return Style{Glyph: t.Rune(), Color: tcell.ColorWhite}
}

// ParseHexColor converts a hex color string ("#RRGGBB" or "RRGGBB") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}
