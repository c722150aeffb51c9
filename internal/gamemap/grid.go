package gamemap

import (
	"fmt"

	"yendor/internal/geom"
)

// Grid is a dense geom.Width × geom.Height array of cells stored row-major.
// Indexing outside the level panics; callers check untrusted points with
// geom.Point.InBounds first.
type Grid[T any] struct {
	cells []T
}

// NewGrid creates a Grid with every cell set to fill.
func NewGrid[T any](fill T) Grid[T] {
	g := Grid[T]{cells: make([]T, geom.Width*geom.Height)}
	g.Fill(fill)
	return g
}

// Fill sets every cell to v.
func (g Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// At returns the cell at p. Panics if p is out of bounds.
func (g Grid[T]) At(p geom.Point) T {
	return g.cells[index(p.X, p.Y)]
}

// Set replaces the cell at p. Panics if p is out of bounds.
func (g Grid[T]) Set(p geom.Point, v T) {
	g.cells[index(p.X, p.Y)] = v
}

// AtXY is At addressed by column and row.
func (g Grid[T]) AtXY(x, y int) T {
	return g.cells[index(x, y)]
}

// SetXY is Set addressed by column and row.
func (g Grid[T]) SetXY(x, y int, v T) {
	g.cells[index(x, y)] = v
}

func index(x, y int) int {
	if x < 0 || y < 0 || x >= geom.Width || y >= geom.Height {
		panic(fmt.Sprintf("gamemap: cell (%d,%d) outside %dx%d level", x, y, geom.Width, geom.Height))
	}
	return y*geom.Width + x
}
