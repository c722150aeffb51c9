package game

import "yendor/internal/geom"

// ActionKind distinguishes the two things a player can do on a turn.
type ActionKind uint8

const (
	ActionMove   ActionKind = iota // step or attack by Offset; zero Offset waits
	ActionSelect                   // use the stairs or item underfoot
)

// Action is one player decision fed to NextTurn.
type Action struct {
	Kind   ActionKind
	Offset geom.Point
}

// MoveBy steps by (dx, dy). MoveBy(0, 0) waits a turn.
func MoveBy(dx, dy int) Action {
	return Action{Kind: ActionMove, Offset: geom.Pt(dx, dy)}
}

// Select interacts with the player's current tile.
func Select() Action {
	return Action{Kind: ActionSelect}
}
