package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"yendor/internal/game"
)

// Run plays g on screen until the player quits, the game ends or the screen
// goes away. The caller owns screen and finalizes it.
func Run(screen tcell.Screen, g *game.Context, logger *slog.Logger) error {
	r := NewRenderer(screen)
	for {
		if g.Over() {
			r.DrawEnd(g)
			waitForKey(screen)
			return nil
		}
		r.Draw(g)

		switch ev := screen.PollEvent().(type) {
		case nil:
			// Screen finalized, e.g. the SSH client hung up.
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action, cmd := keyToAction(ev)
			switch cmd {
			case cmdQuit:
				logger.Debug("player quit", "floor", g.Floor, "turn", g.Turn)
				return nil
			case cmdPlay:
				if err := g.NextTurn(action); err != nil {
					return fmt.Errorf("turn %d: %w", g.Turn, err)
				}
			}
		}
	}
}

// waitForKey blocks until a key press or until the screen is finalized.
func waitForKey(screen tcell.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
