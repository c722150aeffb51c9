package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"yendor/internal/game"
)

// statusLine summarizes the player's stats.
func statusLine(g *game.Context) string {
	p := g.Player
	return fmt.Sprintf("HP: %d/%d  XP: %d  Attack: 0-%d  Shielding: 0-%d  Level: %d  Turn: %d",
		p.Health, p.MaxHealth, p.Experience, p.MaxAttack, p.MaxShield, g.Floor, g.Turn)
}

// drawHUD renders the status line and this turn's messages at the bottom of
// the screen.
func (r *Renderer) drawHUD(g *game.Context) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	r.drawText(0, hudY+1, statusLine(g), tcell.StyleDefault.Foreground(tcell.ColorWhite))

	// Only the last hudRows-2 messages fit.
	events := g.Events
	if n := hudRows - 2; len(events) > n {
		events = events[len(events)-n:]
	}
	for i, e := range events {
		style := tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
		if e.Kind == game.EventGotAttacked {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		r.drawText(0, hudY+2+i, e.Message(g.Floor), style)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, cut to the screen width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range runewidth.Truncate(text, w-x, "…") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
