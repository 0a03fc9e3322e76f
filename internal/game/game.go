package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/cavedash/internal/cave"
	"github.com/samdwyer/cavedash/internal/gamedata"
	"github.com/samdwyer/cavedash/internal/telemetry"
	"github.com/samdwyer/cavedash/internal/ui"
	"github.com/samdwyer/cavedash/internal/world"
)

// errStepAborted stops a step-debug load when the player presses escape.
var errStepAborted = errors.New("cave load aborted")

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	registry *gamedata.CaveRegistry
	caveName string
	session  *Session
	snap     bool // next direction snaps instead of moving
	running  bool
}

// New creates a game on the local terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen)
}

// NewWithScreen creates a game drawing to an existing tcell screen.
func NewWithScreen(cfg Config, s tcell.Screen) (*Game, error) {
	screen, err := ui.WrapScreen(s)
	if err != nil {
		return nil, err
	}
	return newGame(cfg, screen)
}

func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		screen.Close()
		return nil, err
	}
	registry, err := gamedata.LoadCaveRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}
	palette, err := gamedata.LoadPalette()
	if err != nil {
		screen.Close()
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		registry: registry,
		running:  true,
	}, nil
}

// Run loads the configured cave and executes the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	err := g.loadCave(ctx)
	for err == nil && g.running {
		g.render()
		err = g.handleInput(ctx)
	}
	if errors.Is(err, errStepAborted) {
		return nil
	}
	return err
}

// loadCave decodes the configured cave and starts a fresh session on it.
func (g *Game) loadCave(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.load_cave")
	defer span.End()

	data, name, err := CaveData(g.cfg, g.registry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	d := cave.Decoder{Level: g.cfg.Level}
	if g.cfg.StepDebug {
		d.AfterCommand = g.stepCommand(name)
	}
	c, err := d.Decode(ctx, data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("load cave %s: %w", name, err)
	}

	session, err := NewSession(c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("load cave %s: %w", name, err)
	}
	g.session = session
	g.caveName = name
	g.snap = false

	span.SetAttributes(
		attribute.String("cave.name", name),
		attribute.Int("cave.level", g.cfg.Level),
		attribute.Int("cave.diamonds_needed", session.Needed()),
	)
	return nil
}

// stepCommand returns a decoder hook that shows the grid after each command
// and waits for space before continuing.
func (g *Game) stepCommand(name string) func(cave.Command, *world.Grid) error {
	return func(cmd cave.Command, grid *world.Grid) error {
		g.renderer.Render(grid, ui.HUD{Title: name, Status: "step"})
		g.renderer.RenderMessage(cmd.String()+"  [space]", grid.Height+1)
		for {
			var keys Keys
			switch ev := g.screen.PollEvent().(type) {
			case *tcell.EventKey:
				keys = ReadKey(ev)
			case *tcell.EventInterrupt, nil:
				keys.Esc = true
			default:
				continue
			}
			if keys.Esc {
				g.running = false
				return errStepAborted
			}
			if keys.Key == ' ' {
				return nil
			}
		}
	}
}

func (g *Game) render() {
	s := g.session
	g.renderer.Render(s.Grid, ui.HUD{
		Title:    g.caveName,
		Diamonds: s.Player.Diamonds,
		Needed:   s.Needed(),
		Status:   g.status(),
	})
}

func (g *Game) status() string {
	switch g.session.State {
	case StateComplete:
		return "complete! enter: next cave"
	case StateDead:
		return "dead. r: retry"
	}
	if g.snap {
		return "snap"
	}
	if g.session.ExitOpen() {
		return "exit open"
	}
	return ""
}

// handleInput processes a single input event. An interrupt or a closed
// screen ends the game.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleKeys(ctx, ReadKey(ev))
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventInterrupt, nil:
		g.running = false
	}
	return nil
}

// handleKeys applies one key press to the session.
func (g *Game) handleKeys(ctx context.Context, keys Keys) error {
	switch {
	case keys.Esc:
		g.running = false

	case keys.Key == 'r' || keys.Key == 'R':
		return g.loadCave(ctx)

	case keys.Fire && g.session.State == StateComplete && g.cfg.CaveFile == "":
		g.cfg.CaveID = nextCaveID(g.registry, g.currentCaveID())
		return g.loadCave(ctx)

	case keys.Fire:
		g.snap = !g.snap

	case keys.Moved:
		if g.snap {
			g.session.Snap(keys.Dir)
			g.snap = false
		} else {
			g.session.Move(keys.Dir)
		}
	}
	return nil
}

// currentCaveID resolves the library id of the cave being played.
func (g *Game) currentCaveID() string {
	if g.cfg.CaveID != "" {
		return g.cfg.CaveID
	}
	if def, err := g.registry.Lookup(""); err == nil {
		return def.ID
	}
	return ""
}
