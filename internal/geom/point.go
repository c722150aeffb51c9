// Package geom holds the integer coordinate type shared by every spatial
// structure of a level.
package geom

// Level dimensions in cells. Every level has the same size.
const (
	Width  = 60
	Height = 24
)

// Point is a cell coordinate. X grows right, Y grows down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// InBounds reports whether p lies inside the Width × Height level.
func (p Point) InBounds() bool {
	return p.X >= 0 && p.Y >= 0 && p.X < Width && p.Y < Height
}

// IsNeighboring reports whether other is orthogonally adjacent to p.
// Diagonals do not count; a point neighbors itself.
func (p Point) IsNeighboring(other Point) bool {
	return (p.X == other.X && absDiff(p.Y, other.Y) <= 1) ||
		(p.Y == other.Y && absDiff(p.X, other.X) <= 1)
}

// Manhattan returns the taxicab distance between p and other.
func (p Point) Manhattan(other Point) int {
	return absDiff(p.X, other.X) + absDiff(p.Y, other.Y)
}

// orthogonal offsets in neighbor iteration order.
var orthogonal = [4]Point{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Neighbors returns the four orthogonal neighbors of p. Results may lie out
// of bounds when p is on the level edge.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range orthogonal {
		out[i] = p.Add(d)
	}
	return out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
