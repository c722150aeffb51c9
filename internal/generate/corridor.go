package generate

import (
	"math/rand"

	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// carveRoom turns the interior of r into floor. When a corner of r already
// touches floor only diagonally, one border cell next to it is opened so the
// two areas connect orthogonally.
func carveRoom(tiles gamemap.Grid[gamemap.Tile], r gamemap.Rect) {
	for y := r.TopLeft.Y + 1; y < r.BottomRight.Y; y++ {
		for x := r.TopLeft.X + 1; x < r.BottomRight.X; x++ {
			tiles.SetXY(x, y, gamemap.Floor())
		}
	}

	left, top := r.TopLeft.X, r.TopLeft.Y
	right, bottom := r.BottomRight.X, r.BottomRight.Y
	openCorner(tiles, left, top, left+1, top, left, top+1)
	openCorner(tiles, right, bottom, right-1, bottom, right, bottom-1)
	openCorner(tiles, left, bottom, left+1, bottom, left, bottom-1)
	openCorner(tiles, right, top, right-1, top, right, top+1)
}

// openCorner opens (vx, vy) when the corner (cx, cy) is floor and both the
// horizontal neighbor (hx, hy) and (vx, vy) are still wall.
func openCorner(tiles gamemap.Grid[gamemap.Tile], cx, cy, hx, hy, vx, vy int) {
	if tiles.AtXY(cx, cy).Kind == gamemap.TileFloor &&
		tiles.AtXY(hx, hy).Kind == gamemap.TileWall &&
		tiles.AtXY(vx, vy).Kind == gamemap.TileWall {
		tiles.SetXY(vx, vy, gamemap.Floor())
	}
}

// carveCorridorBetween digs an L-shaped tunnel between random inner points
// of a and b, horizontal leg first or vertical leg first at random.
func carveCorridorBetween(rng *rand.Rand, tiles gamemap.Grid[gamemap.Tile], a, b gamemap.Rect) {
	p1 := InnerPoint(rng, a)
	p2 := InnerPoint(rng, b)
	carveCorridor(rng, tiles, p1, p2)
}

func carveCorridor(rng *rand.Rand, tiles gamemap.Grid[gamemap.Tile], p1, p2 geom.Point) {
	if rng.Intn(2) == 0 {
		carveH(tiles, p1.X, p2.X, p1.Y)
		carveV(tiles, p1.Y, p2.Y, p2.X)
	} else {
		carveV(tiles, p1.Y, p2.Y, p1.X)
		carveH(tiles, p1.X, p2.X, p2.Y)
	}
}

func carveH(tiles gamemap.Grid[gamemap.Tile], x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		tiles.SetXY(x, y, gamemap.Floor())
	}
}

func carveV(tiles gamemap.Grid[gamemap.Tile], y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		tiles.SetXY(x, y, gamemap.Floor())
	}
}
