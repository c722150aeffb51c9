// Package gamemap holds the tile grid and per-floor state of one dungeon level.
package gamemap

import (
	"yendor/internal/being"
	"yendor/internal/geom"
)

// Rect is an axis-aligned rectangle used for rooms. The border cells are
// wall; only cells strictly inside TopLeft..BottomRight are carved.
type Rect struct {
	TopLeft, BottomRight geom.Point
}

// NewRect creates a Rect with origin (x, y) spanning width × height.
func NewRect(x, y, width, height int) Rect {
	return Rect{
		TopLeft:     geom.Pt(x, y),
		BottomRight: geom.Pt(x+width, y+height),
	}
}

// Overlaps reports whether r and other share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.TopLeft.X < other.BottomRight.X &&
		r.TopLeft.Y < other.BottomRight.Y &&
		other.TopLeft.X < r.BottomRight.X &&
		other.TopLeft.Y < r.BottomRight.Y
}

// Contains reports whether p lies strictly inside the border of r.
func (r Rect) Contains(p geom.Point) bool {
	return p.X > r.TopLeft.X && p.X < r.BottomRight.X &&
		p.Y > r.TopLeft.Y && p.Y < r.BottomRight.Y
}

// Level is one generated floor: terrain, what the player has seen of it,
// and the enemies still alive on it.
type Level struct {
	Tiles Grid[Tile]
	// LastSeen holds the turn a cell was last in view; 0 means never.
	LastSeen   Grid[uint32]
	Enemies    []*being.Being
	UpStairs   geom.Point
	DownStairs geom.Point
}

// NewLevel wraps a carved tile grid in a Level with nothing seen yet.
func NewLevel(tiles Grid[Tile], up, down geom.Point, enemies []*being.Being) *Level {
	return &Level{
		Tiles:      tiles,
		LastSeen:   NewGrid[uint32](0),
		Enemies:    enemies,
		UpStairs:   up,
		DownStairs: down,
	}
}

// IsWalkable returns true when p is in bounds and walkable.
func (l *Level) IsWalkable(p geom.Point) bool {
	return p.InBounds() && l.Tiles.At(p).Walkable()
}

// EnemyAt returns the index of the enemy standing on p.
func (l *Level) EnemyAt(p geom.Point) (int, bool) {
	for i, e := range l.Enemies {
		if e.Position == p {
			return i, true
		}
	}
	return -1, false
}

// Occupied reports whether an enemy stands on p.
func (l *Level) Occupied(p geom.Point) bool {
	_, ok := l.EnemyAt(p)
	return ok
}

// Visible reports whether p was in view on the given turn.
func (l *Level) Visible(p geom.Point, turn uint32) bool {
	return l.LastSeen.At(p) == turn
}

// Seen reports whether p has ever been in view.
func (l *Level) Seen(p geom.Point) bool {
	return l.LastSeen.At(p) > 0
}
