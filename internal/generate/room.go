package generate

import (
	"fmt"
	"math/rand"

	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// Room side lengths are drawn from [MinRoomWidth, MaxRoomWidth).
const (
	MinRoomWidth = 4
	MaxRoomWidth = 10
)

// Room returns a randomly sized and placed room that fits inside the level.
func Room(rng *rand.Rand) gamemap.Rect {
	w := MinRoomWidth + rng.Intn(MaxRoomWidth-MinRoomWidth)
	h := MinRoomWidth + rng.Intn(MaxRoomWidth-MinRoomWidth)
	x := rng.Intn(geom.Width - w)
	y := rng.Intn(geom.Height - h)
	return gamemap.NewRect(x, y, w, h)
}

// RoomNotOverlapping samples rooms until one does not overlap existing.
// It gives up with ErrPlacementExhausted after maxAttempts candidates.
func RoomNotOverlapping(rng *rand.Rand, existing gamemap.Rect, maxAttempts int) (gamemap.Rect, error) {
	for range maxAttempts {
		r := Room(rng)
		if !existing.Overlaps(r) {
			return r, nil
		}
	}
	return gamemap.Rect{}, fmt.Errorf("room clear of %v after %d attempts: %w", existing, maxAttempts, ErrPlacementExhausted)
}

// InnerPoint returns a uniform point strictly inside the border of r.
func InnerPoint(rng *rand.Rand, r gamemap.Rect) geom.Point {
	x := r.TopLeft.X + 1 + rng.Intn(r.BottomRight.X-r.TopLeft.X-1)
	y := r.TopLeft.Y + 1 + rng.Intn(r.BottomRight.Y-r.TopLeft.Y-1)
	return geom.Pt(x, y)
}
