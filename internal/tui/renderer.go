// Package tui is the terminal front-end: it draws a game.Context on a tcell
// screen and turns key presses into game actions.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"yendor/internal/game"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// hudRows is the height of the status area under the map.
const hudRows = 5

// Renderer draws the game onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders the level as the player knows it, then the HUD.
func (r *Renderer) Draw(g *game.Context) {
	r.screen.Clear()
	w, h := r.screen.Size()
	r.camera.Fit(w, h-hudRows, g.Player.Position)

	r.drawMap(g.Level, g.Turn)
	r.drawBeings(g)
	r.drawHUD(g)
	r.screen.Show()
}

// drawMap renders every cell that has been seen at least once.
func (r *Renderer) drawMap(level *gamemap.Level, turn uint32) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	dim := style.Foreground(tcell.ColorGray)

	for y := 0; y < geom.Height; y++ {
		for x := 0; x < geom.Width; x++ {
			p := geom.Pt(x, y)
			if !level.Seen(p) {
				continue
			}
			sx, sy, onScreen := r.camera.ToScreen(p)
			if !onScreen {
				continue
			}
			inView := level.Visible(p, turn)
			glyph := tileGlyph(level.Tiles.At(p), inView)
			if glyph == "" {
				continue
			}
			if inView {
				r.putGlyph(sx, sy, glyph, style)
			} else {
				r.putGlyph(sx, sy, glyph, dim)
			}
		}
	}
}

// drawBeings renders enemies standing in view, then the player on top.
func (r *Renderer) drawBeings(g *game.Context) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, e := range g.Level.Enemies {
		if !g.Level.Visible(e.Position, g.Turn) {
			continue
		}
		if sx, sy, ok := r.camera.ToScreen(e.Position); ok {
			r.putGlyph(sx, sy, beingGlyph(e.Kind), style)
		}
	}
	if sx, sy, ok := r.camera.ToScreen(g.Player.Position); ok {
		r.putGlyph(sx, sy, beingGlyph(g.Player.Kind), style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y) and pads it to two columns.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// DrawEnd replaces the map with the final message of a finished game.
func (r *Renderer) DrawEnd(g *game.Context) {
	r.screen.Clear()
	w, h := r.screen.Size()

	msg := ""
	for _, e := range g.Events {
		if e.Terminal() {
			msg = e.Message(g.Floor)
		}
	}
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{msg, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)},
		{statusLine(g), tcell.StyleDefault.Foreground(tcell.ColorWhite)},
		{"Press any key to leave.", tcell.StyleDefault.Foreground(tcell.ColorGray)},
	}
	y := h/2 - len(lines)
	for _, l := range lines {
		x := max(0, (w-runewidth.StringWidth(l.text))/2)
		r.drawText(x, y, l.text, l.style)
		y += 2
	}
	r.screen.Show()
}
