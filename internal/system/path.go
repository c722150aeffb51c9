package system

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"yendor/internal/geom"
)

type pathNode struct {
	p    geom.Point
	g, f int
}

// FindPath searches for a shortest orthogonal path from start to goal with
// A* (unit step cost, Manhattan heuristic). passable is only asked about
// in-bounds cells other than start and goal. The returned path includes both
// ends; ok is false when goal cannot be reached.
func FindPath(start, goal geom.Point, passable func(geom.Point) bool) ([]geom.Point, bool) {
	if start == goal {
		return []geom.Point{start}, true
	}

	open := heap.New[pathNode](func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	})
	closed := mapset.New[geom.Point]()
	cost := map[geom.Point]int{start: 0}
	from := make(map[geom.Point]geom.Point)

	open.Push(pathNode{p: start, g: 0, f: start.Manhattan(goal)})
	for open.Size() > 0 {
		cur, _ := open.Pop()
		if closed.Has(cur.p) {
			continue
		}
		if cur.p == goal {
			return unwind(from, start, goal), true
		}
		closed.Put(cur.p)

		for _, n := range cur.p.Neighbors() {
			if !n.InBounds() || closed.Has(n) {
				continue
			}
			if n != goal && !passable(n) {
				continue
			}
			g := cur.g + 1
			if old, seen := cost[n]; seen && old <= g {
				continue
			}
			cost[n] = g
			from[n] = cur.p
			open.Push(pathNode{p: n, g: g, f: g + n.Manhattan(goal)})
		}
	}
	return nil, false
}

func unwind(from map[geom.Point]geom.Point, start, goal geom.Point) []geom.Point {
	path := []geom.Point{goal}
	for p := goal; p != start; {
		p = from[p]
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
