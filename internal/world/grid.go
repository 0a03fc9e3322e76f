package world

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// CaveWidth is the playfield width of every legacy cave.
	CaveWidth = 40
	// CaveHeight is the playfield height of every legacy cave.
	CaveHeight = 22
)

var (
	// ErrOutOfBounds is returned when a write would land outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrBadDirection is returned for a direction outside the compass table.
	ErrBadDirection = errors.New("invalid direction")
)

// Grid is a fixed-size, row-major buffer of tiles.
type Grid struct {
	Width  int
	Height int
	cells  []Tile
}

// NewGrid creates a grid filled with the given tile.
func NewGrid(width, height int, fill Tile) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Tile, width*height)
	for i := range cells {
		cells[i] = fill
	}
	return &Grid{Width: width, Height: height, cells: cells}
}

// InBounds reports whether (x, y) is within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y). Out-of-bounds reads see steel.
func (g *Grid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return TileSteel
	}
	return g.cells[y*g.Width+x]
}

// Put writes a tile at (x, y).
func (g *Grid) Put(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("put (%d,%d) on %dx%d grid: %w", x, y, g.Width, g.Height, ErrOutOfBounds)
	}
	g.cells[y*g.Width+x] = t
	return nil
}

// HLine writes t on row y for columns [x1, x2).
func (g *Grid) HLine(y, x1, x2 int, t Tile) error {
	if x2 <= x1 {
		return nil
	}
	if !g.InBounds(x1, y) || !g.InBounds(x2-1, y) {
		return fmt.Errorf("hline y=%d x=%d..%d: %w", y, x1, x2, ErrOutOfBounds)
	}
	row := g.cells[y*g.Width : (y+1)*g.Width]
	for x := x1; x < x2; x++ {
		row[x] = t
	}
	return nil
}

// VLine writes t on column x for rows [y1, y2).
func (g *Grid) VLine(x, y1, y2 int, t Tile) error {
	if y2 <= y1 {
		return nil
	}
	if !g.InBounds(x, y1) || !g.InBounds(x, y2-1) {
		return fmt.Errorf("vline x=%d y=%d..%d: %w", x, y1, y2, ErrOutOfBounds)
	}
	for y := y1; y < y2; y++ {
		g.cells[y*g.Width+x] = t
	}
	return nil
}

// Line writes length cells starting at (x, y), stepping in direction d.
// The whole line is checked before anything is written.
func (g *Grid) Line(x, y, length int, d Direction, t Tile) error {
	if !d.Valid() {
		return fmt.Errorf("line direction %d: %w", d, ErrBadDirection)
	}
	if length <= 0 {
		return nil
	}
	dx, dy := d.Delta()
	endX, endY := x+dx*(length-1), y+dy*(length-1)
	if !g.InBounds(x, y) || !g.InBounds(endX, endY) {
		return fmt.Errorf("line (%d,%d)->(%d,%d): %w", x, y, endX, endY, ErrOutOfBounds)
	}
	for i := 0; i < length; i++ {
		g.cells[y*g.Width+x] = t
		x += dx
		y += dy
	}
	return nil
}

// FillRect writes t on every cell of r.
func (g *Grid) FillRect(r Rect, t Tile) error {
	if r.Empty() {
		return nil
	}
	if !r.Within(g.Width, g.Height) {
		return fmt.Errorf("fill rect %+v: %w", r, ErrOutOfBounds)
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		if err := g.HLine(y, r.X, r.X+r.Width, t); err != nil {
			return err
		}
	}
	return nil
}

// BorderRect writes t on the outline of r, leaving the interior untouched.
func (g *Grid) BorderRect(r Rect, t Tile) error {
	if r.Empty() {
		return nil
	}
	if !r.Within(g.Width, g.Height) {
		return fmt.Errorf("border rect %+v: %w", r, ErrOutOfBounds)
	}
	top, bottom := r.Y, r.Y+r.Height-1
	left, right := r.X, r.X+r.Width-1
	if err := g.HLine(top, left, right+1, t); err != nil {
		return err
	}
	if err := g.HLine(bottom, left, right+1, t); err != nil {
		return err
	}
	if err := g.VLine(left, top+1, bottom, t); err != nil {
		return err
	}
	return g.VLine(right, top+1, bottom, t)
}

// Bounds returns the rectangle covering the whole grid.
func (g *Grid) Bounds() Rect {
	return Rect{Width: g.Width, Height: g.Height}
}

// Find returns the first cell holding t in row-major order.
func (g *Grid) Find(t Tile) (x, y int, ok bool) {
	for i, c := range g.cells {
		if c == t {
			return i % g.Width, i / g.Width, true
		}
	}
	return -1, -1, false
}

// Count returns how many cells hold t.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Row returns row y as a string of tile glyphs.
func (g *Grid) Row(y int) string {
	if y < 0 || y >= g.Height {
		return ""
	}
	b := make([]byte, g.Width)
	for x := range b {
		b[x] = byte(g.cells[y*g.Width+x])
	}
	return string(b)
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		sb.WriteString(g.Row(y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{Width: g.Width, Height: g.Height, cells: cells}
}
