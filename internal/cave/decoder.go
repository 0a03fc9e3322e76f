package cave

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/cavedash/internal/telemetry"
	"github.com/samdwyer/cavedash/internal/world"
)

// Cave is a fully decoded cave.
type Cave struct {
	Header   Header
	Grid     *world.Grid
	Commands []Record
}

// Record is a decoded command and the buffer offset it was read from.
type Record struct {
	Offset  int
	Command Command
}

// Decoder turns raw cave buffers into grids.
type Decoder struct {
	// Level selects the difficulty level (1..5). Zero means level 1.
	Level int

	// AfterCommand, if set, runs after each command is applied.
	// A non-nil error aborts the load.
	AfterCommand func(cmd Command, g *world.Grid) error

	// Tracer overrides the package tracer.
	Tracer trace.Tracer
}

// Decode decodes data at difficulty level 1 with no per-command hook.
func Decode(ctx context.Context, data []byte) (*Cave, error) {
	var d Decoder
	return d.Decode(ctx, data)
}

// Decode parses the header, fills the playfield from the seeded sequence,
// frames it and applies the command stream. Any error rejects the whole cave.
func (d *Decoder) Decode(ctx context.Context, data []byte) (*Cave, error) {
	tracer := d.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("cave")
	}
	_, span := tracer.Start(ctx, "cave.decode")
	defer span.End()

	span.SetAttributes(
		attribute.Int("cave.bytes", len(data)),
		attribute.Int("cave.level", d.level()),
	)

	c, err := d.decode(data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cave.number", int(c.Header.Number)),
		attribute.Int("cave.seed", int(c.Header.Seed)),
		attribute.Int("cave.commands", len(c.Commands)),
	)
	return c, nil
}

func (d *Decoder) level() int {
	if d.Level == 0 {
		return 1
	}
	return d.Level
}

func (d *Decoder) decode(data []byte) (*Cave, error) {
	h, err := ParseHeaderLevel(data, d.level())
	if err != nil {
		return nil, err
	}

	g := world.NewGrid(h.Width, h.Height, world.TileEmpty)
	if err := RandomFill(g, h); err != nil {
		return nil, fmt.Errorf("%w: random fill: %w", ErrMalformedCave, err)
	}

	c := &Cave{Header: h, Grid: g}
	for off := HeaderSize; off < len(data) && data[off] != terminator; {
		cmd, err := decodeCommand(data, off)
		if err != nil {
			return nil, fmt.Errorf("%w: command at 0x%02X: %w", ErrMalformedCave, off, err)
		}
		if err := cmd.Apply(g); err != nil {
			return nil, fmt.Errorf("%w: %s at 0x%02X: %w", ErrMalformedCave, cmd, off, err)
		}
		c.Commands = append(c.Commands, Record{Offset: off, Command: cmd})

		if d.AfterCommand != nil {
			if err := d.AfterCommand(cmd, g); err != nil {
				return nil, fmt.Errorf("after %s at 0x%02X: %w", cmd, off, err)
			}
		}
		off += cmd.Kind().Size()
	}
	return c, nil
}

// Spawn returns the position of the first spawn tile.
func (c *Cave) Spawn() (x, y int, ok bool) {
	return c.Grid.Find(world.TileSpawn)
}
