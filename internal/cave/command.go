package cave

import (
	"errors"
	"fmt"

	"github.com/samdwyer/cavedash/internal/world"
)

const (
	terminator = 0xFF
	symbolMask = 0x3F
	kindShift  = 6

	// Raw rows count from the top of a two-line score display the
	// playfield sits under.
	scoreRows = 2
)

var (
	errTruncated   = errors.New("record runs past end of buffer")
	errAboveField  = errors.New("row above playfield")
	errEmptyRect   = errors.New("rectangle has no area")
	errUnknownKind = errors.New("unknown command kind")
)

// Kind is the 2-bit tag in the top of a command byte.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindFilledRect
	KindRect
)

// recordSizes holds the total byte length of each record, command byte included.
var recordSizes = [...]int{
	KindPoint:      3,
	KindLine:       5,
	KindFilledRect: 6,
	KindRect:       5,
}

// Size returns the record length for k, or 0 for an unknown kind.
func (k Kind) Size() int {
	if int(k) >= len(recordSizes) {
		return 0
	}
	return recordSizes[k]
}

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindFilledRect:
		return "filled_rect"
	case KindRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Command is one decoded drawing record.
type Command interface {
	Kind() Kind
	Apply(g *world.Grid) error
	String() string
}

// Point writes a single cell.
type Point struct {
	Symbol world.Tile
	X, Y   int
}

func (Point) Kind() Kind { return KindPoint }

func (c Point) Apply(g *world.Grid) error {
	return g.Put(c.X, c.Y, c.Symbol)
}

func (c Point) String() string {
	return fmt.Sprintf("point %s at (%d,%d)", c.Symbol.Name(), c.X, c.Y)
}

// Line writes Length cells from (X, Y) along Direction.
type Line struct {
	Symbol    world.Tile
	X, Y      int
	Length    int
	Direction world.Direction
}

func (Line) Kind() Kind { return KindLine }

func (c Line) Apply(g *world.Grid) error {
	return g.Line(c.X, c.Y, c.Length, c.Direction, c.Symbol)
}

func (c Line) String() string {
	return fmt.Sprintf("line %s from (%d,%d) len %d dir %s", c.Symbol.Name(), c.X, c.Y, c.Length, c.Direction)
}

// FilledRect draws an outline in Border and fills the inset interior with Fill.
type FilledRect struct {
	Border world.Tile
	Fill   world.Tile
	Rect   world.Rect
}

func (FilledRect) Kind() Kind { return KindFilledRect }

func (c FilledRect) Apply(g *world.Grid) error {
	if err := g.BorderRect(c.Rect, c.Border); err != nil {
		return err
	}
	return g.FillRect(c.Rect.Inset(1), c.Fill)
}

func (c FilledRect) String() string {
	return fmt.Sprintf("filled_rect %s/%s %+v", c.Border.Name(), c.Fill.Name(), c.Rect)
}

// Rect covers the whole rectangle with one symbol.
type Rect struct {
	Symbol world.Tile
	Rect   world.Rect
}

func (Rect) Kind() Kind { return KindRect }

func (c Rect) Apply(g *world.Grid) error {
	return g.FillRect(c.Rect, c.Symbol)
}

func (c Rect) String() string {
	return fmt.Sprintf("rect %s %+v", c.Symbol.Name(), c.Rect)
}

// playfieldRow removes the score display bias from a raw row.
func playfieldRow(raw byte) (int, error) {
	y := int(raw) - scoreRows
	if y < 0 {
		return 0, fmt.Errorf("raw row %d: %w", raw, errAboveField)
	}
	return y, nil
}

// rectFrom builds a non-empty rectangle from raw payload bytes.
func rectFrom(x byte, y int, w, h byte) (world.Rect, error) {
	r := world.Rect{X: int(x), Y: y, Width: int(w), Height: int(h)}
	if r.Empty() {
		return r, fmt.Errorf("%dx%d: %w", w, h, errEmptyRect)
	}
	return r, nil
}

// decodeCommand reads the record starting at data[off].
func decodeCommand(data []byte, off int) (Command, error) {
	b := data[off]
	kind := Kind(b >> kindShift)
	symbol := world.FromLegacy(b & symbolMask)

	size := kind.Size()
	if size == 0 {
		return nil, fmt.Errorf("kind %d: %w", kind, errUnknownKind)
	}
	if off+size > len(data) {
		return nil, fmt.Errorf("%s needs %d bytes, %d left: %w", kind, size, len(data)-off, errTruncated)
	}
	p := data[off+1 : off+size]

	y, err := playfieldRow(p[1])
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindPoint:
		return Point{Symbol: symbol, X: int(p[0]), Y: y}, nil

	case KindLine:
		dir := world.Direction(p[3])
		if !dir.Valid() {
			return nil, fmt.Errorf("direction %d: %w", p[3], world.ErrBadDirection)
		}
		return Line{Symbol: symbol, X: int(p[0]), Y: y, Length: int(p[2]), Direction: dir}, nil

	case KindFilledRect:
		r, err := rectFrom(p[0], y, p[2], p[3])
		if err != nil {
			return nil, err
		}
		fill := world.FromLegacy(p[4] & symbolMask)
		return FilledRect{Border: symbol, Fill: fill, Rect: r}, nil

	case KindRect:
		r, err := rectFrom(p[0], y, p[2], p[3])
		if err != nil {
			return nil, err
		}
		return Rect{Symbol: symbol, Rect: r}, nil
	}

	return nil, fmt.Errorf("kind %d: %w", kind, errUnknownKind)
}
