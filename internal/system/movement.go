package system

import (
	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall or out-of-bounds
	MoveAttack                    // bumped an enemy
)

// TryMove attempts to move b by offset on level. When the target cell holds
// an enemy, b does not move and the enemy's index is returned with
// MoveAttack. A zero offset is a valid move onto b's own cell.
func TryMove(level *gamemap.Level, b *being.Being, offset geom.Point) (MoveResult, int) {
	target := b.Position.Add(offset)
	if !target.InBounds() || !level.Tiles.At(target).Walkable() {
		return MoveBlocked, -1
	}
	if i, ok := level.EnemyAt(target); ok {
		return MoveAttack, i
	}
	b.Position = target
	return MoveOK, -1
}
