package system

import (
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// quadrant transforms for (depth, col) scan coordinates. depth moves away
// from the origin, col sweeps across the row.
//
//	worldX = ox + depth*dx + col*cx
//	worldY = oy + depth*dy + col*cy
var quadrants = [4]struct{ dx, dy, cx, cy int }{
	{0, -1, 1, 0}, // north
	{0, 1, 1, 0},  // south
	{1, 0, 0, 1},  // east
	{-1, 0, 0, 1}, // west
}

// slope is an exact fraction num/den with den > 0.
type slope struct{ num, den int }

// scanRow is one row of a quadrant scan, bounded by start and end slopes.
type scanRow struct {
	depth      int
	start, end slope
}

func (r scanRow) next() scanRow {
	return scanRow{depth: r.depth + 1, start: r.start, end: r.end}
}

// colRange returns the first and last column whose centre the row's slopes
// cover, rounding ties towards the inside of the row.
func (r scanRow) colRange() (int, int) {
	lo := floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
	hi := -floorDiv(-(2*r.depth*r.end.num - r.end.den), 2*r.end.den)
	return lo, hi
}

// symmetric reports whether the centre of col lies within the row's slopes.
// Floor cells are only revealed when this holds, which keeps visibility
// symmetric between any two floor cells.
func (r scanRow) symmetric(col int) bool {
	return col*r.start.den >= r.depth*r.start.num &&
		col*r.end.den <= r.depth*r.end.num
}

// tileSlope is the slope of the left edge of (depth, col).
func tileSlope(depth, col int) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ComputeFOV runs symmetric shadowcasting from origin. isBlocking reports
// cells that stop sight; visit is called for every cell in view, including
// blocking cells on the edge of the view and the origin itself. A cell may be
// visited more than once.
//
// isBlocking must eventually return true in every direction (the level's
// boundary ring does this), otherwise the scan does not terminate.
func ComputeFOV(origin geom.Point, isBlocking func(geom.Point) bool, visit func(geom.Point)) {
	visit(origin)
	for _, q := range quadrants {
		toWorld := func(depth, col int) geom.Point {
			return geom.Pt(origin.X+depth*q.dx+col*q.cx, origin.Y+depth*q.dy+col*q.cy)
		}
		castQuadrant(scanRow{depth: 1, start: slope{-1, 1}, end: slope{1, 1}}, toWorld, isBlocking, visit)
	}
}

func castQuadrant(row scanRow, toWorld func(depth, col int) geom.Point,
	isBlocking func(geom.Point) bool, visit func(geom.Point)) {

	lo, hi := row.colRange()
	// prev: 0 = none yet, 1 = wall, 2 = floor
	prev := 0
	for col := lo; col <= hi; col++ {
		p := toWorld(row.depth, col)
		wall := isBlocking(p)
		if wall || row.symmetric(col) {
			visit(p)
		}
		if prev == 1 && !wall {
			row.start = tileSlope(row.depth, col)
		}
		if prev == 2 && wall {
			next := row.next()
			next.end = tileSlope(row.depth, col)
			castQuadrant(next, toWorld, isBlocking, visit)
		}
		if wall {
			prev = 1
		} else {
			prev = 2
		}
	}
	if prev == 2 {
		castQuadrant(row.next(), toWorld, isBlocking, visit)
	}
}

// UpdateFOV stamps every cell the player at origin can see with turn. The
// outer boundary ring and opaque tiles block sight. Stamps only ever grow.
func UpdateFOV(level *gamemap.Level, origin geom.Point, turn uint32) {
	isBlocking := func(p geom.Point) bool {
		if p.X <= 0 || p.Y <= 0 || p.X >= geom.Width-1 || p.Y >= geom.Height-1 {
			return true
		}
		return level.Tiles.At(p).Opaque()
	}
	visit := func(p geom.Point) {
		if p.InBounds() && level.LastSeen.At(p) < turn {
			level.LastSeen.Set(p, turn)
		}
	}
	ComputeFOV(origin, isBlocking, visit)
}
