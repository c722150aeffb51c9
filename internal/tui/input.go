package tui

import (
	"github.com/gdamore/tcell/v2"

	"yendor/internal/game"
)

// command is what a key press asks the front-end to do.
type command uint8

const (
	cmdNone command = iota // key has no binding
	cmdPlay                // feed the action to the game
	cmdQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) (game.Action, command) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return game.MoveBy(0, -1), cmdPlay
	case tcell.KeyDown:
		return game.MoveBy(0, 1), cmdPlay
	case tcell.KeyRight:
		return game.MoveBy(1, 0), cmdPlay
	case tcell.KeyLeft:
		return game.MoveBy(-1, 0), cmdPlay
	case tcell.KeyEnter:
		return game.Select(), cmdPlay
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Action{}, cmdQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return game.MoveBy(0, -1), cmdPlay
	case 'j', 'J':
		return game.MoveBy(0, 1), cmdPlay
	case 'l', 'L':
		return game.MoveBy(1, 0), cmdPlay
	case 'h', 'H':
		return game.MoveBy(-1, 0), cmdPlay
	case '.', ' ':
		return game.MoveBy(0, 0), cmdPlay
	case 'q', 'Q':
		return game.Action{}, cmdQuit
	}
	return game.Action{}, cmdNone
}
