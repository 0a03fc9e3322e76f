package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/cavedash/internal/gamedata"
	"github.com/samdwyer/cavedash/internal/world"
)

// HUD is the status line drawn under the cave.
type HUD struct {
	Title    string
	Diamonds int
	Needed   int
	Status   string
}

// Renderer handles drawing the cave to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid with the HUD on the row below it.
func (r *Renderer) Render(grid *world.Grid, hud HUD) {
	r.screen.Clear()
	r.drawGrid(grid)
	r.drawHUD(grid.Width, grid.Height, hud)
	r.screen.Show()
}

// RenderMessage draws a message at row y and flushes the screen.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.drawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.Show()
}

func (r *Renderer) drawGrid(grid *world.Grid) {
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			s := r.palette.Lookup(grid.Get(x, y))
			r.screen.SetContent(x, y, s.Glyph, tcell.StyleDefault.Foreground(s.Color))
		}
	}
}

func (r *Renderer) drawHUD(width, y int, hud HUD) {
	left := fmt.Sprintf("%s  %c %d/%d", hud.Title, r.palette.Lookup(world.TileDiamond).Glyph, hud.Diamonds, hud.Needed)
	r.drawText(0, y, left, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	if hud.Status == "" {
		return
	}
	x := width - runewidth.StringWidth(hud.Status)
	if x < runewidth.StringWidth(left)+1 {
		x = runewidth.StringWidth(left) + 1
	}
	r.drawText(x, y, hud.Status, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// drawText writes s starting at column x and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}
