// Package world provides the cave tile grid and its drawing primitives.
package world

// Tile represents a single cave cell. The value doubles as its plain-text glyph.
type Tile byte

const (
	// TileEmpty is open space.
	TileEmpty Tile = ' '
	// TileDirt is diggable earth, the default fill symbol.
	TileDirt Tile = '.'
	// TileSteel is the indestructible wall used for the cave border.
	TileSteel Tile = '@'
	// TileBoulder falls and can be pushed.
	TileBoulder Tile = 'O'
	// TileDiamond is collected by the player.
	TileDiamond Tile = '$'
	// TileBrick is an ordinary wall.
	TileBrick Tile = 'W'
	// TileButterfly is an enemy.
	TileButterfly Tile = 'E'
	// TileSpawn marks where the player enters the cave.
	TileSpawn Tile = 'S'
	// TilePlayer is the player.
	TilePlayer Tile = 'R'
	// TileExit is the cave exit. Unknown legacy codes also map here.
	TileExit Tile = '_'
	// TileUnknown stands in for legacy objects this game does not model
	// (magic wall, firefly, amoeba).
	TileUnknown Tile = '?'
)

// Tiles lists every tile in the alphabet.
var Tiles = []Tile{
	TileEmpty, TileDirt, TileSteel, TileBoulder, TileDiamond, TileBrick,
	TileButterfly, TileSpawn, TilePlayer, TileExit, TileUnknown,
}

// Legacy object codes used by the cave format.
const (
	CodeSpace       byte = 0x00
	CodeDirt        byte = 0x01
	CodeBrick       byte = 0x02
	CodeMagicWall   byte = 0x03
	CodeExit        byte = 0x04
	CodeSteel       byte = 0x07
	CodeFirefly     byte = 0x08
	CodeBoulder     byte = 0x10
	CodeDiamond     byte = 0x14
	CodePreRockford byte = 0x25
	CodeButterfly   byte = 0x30
	CodeRockford    byte = 0x38
	CodeAmoeba      byte = 0x3A
)

var legacyTiles = map[byte]Tile{
	CodeSpace:       TileEmpty,
	CodeDirt:        TileDirt,
	CodeBrick:       TileBrick,
	CodeMagicWall:   TileUnknown,
	CodeExit:        TileExit,
	CodeSteel:       TileSteel,
	CodeFirefly:     TileUnknown,
	CodeBoulder:     TileBoulder,
	CodeDiamond:     TileDiamond,
	CodePreRockford: TileSpawn,
	CodeButterfly:   TileButterfly,
	CodeRockford:    TilePlayer,
	CodeAmoeba:      TileUnknown,
}

// FromLegacy converts a legacy object code to a Tile.
// Codes without an entry fall back to TileExit.
func FromLegacy(code byte) Tile {
	if t, ok := legacyTiles[code]; ok {
		return t
	}
	return TileExit
}

// Name returns a human-readable tile name.
func (t Tile) Name() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileDirt:
		return "dirt"
	case TileSteel:
		return "steel"
	case TileBoulder:
		return "boulder"
	case TileDiamond:
		return "diamond"
	case TileBrick:
		return "brick"
	case TileButterfly:
		return "butterfly"
	case TileSpawn:
		return "spawn"
	case TilePlayer:
		return "player"
	case TileExit:
		return "exit"
	case TileUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
