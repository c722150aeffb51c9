package tui

import "yendor/internal/geom"

// Camera translates between level coordinates and screen coordinates.
// Level X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// Fit sizes the viewport and picks offsets showing as much of the level as
// possible around p. When the whole level fits it stays pinned to the top
// left corner.
func (c *Camera) Fit(viewW, viewH int, p geom.Point) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.OffsetX = clampOffset(p.X-(viewW/2)/2, geom.Width-viewW/2)
	c.OffsetY = clampOffset(p.Y-viewH/2, geom.Height-viewH)
}

func clampOffset(off, maxOff int) int {
	return max(0, min(off, maxOff))
}

// ToScreen converts level point p to screen (sx, sy). visible is false when
// the result falls outside the viewport.
func (c *Camera) ToScreen(p geom.Point) (sx, sy int, visible bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}
