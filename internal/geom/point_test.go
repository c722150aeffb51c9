package geom

import "testing"

func TestInBounds(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(Width-1, Height-1), true},
		{Pt(-1, 0), false},
		{Pt(0, -1), false},
		{Pt(Width, 0), false},
		{Pt(0, Height), false},
	}
	for _, c := range cases {
		if got := c.p.InBounds(); got != c.want {
			t.Errorf("%v.InBounds()=%v, want %v", c.p, got, c.want)
		}
	}
}

func TestIsNeighboring(t *testing.T) {
	cases := []struct {
		name string
		a, b Point
		want bool
	}{
		{"same cell", Pt(5, 5), Pt(5, 5), true},
		{"east", Pt(5, 5), Pt(6, 5), true},
		{"north", Pt(5, 5), Pt(5, 4), true},
		{"diagonal", Pt(5, 5), Pt(6, 6), false},
		{"two away", Pt(5, 5), Pt(7, 5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.IsNeighboring(tc.b); got != tc.want {
				t.Errorf("IsNeighboring(%v,%v)=%v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.IsNeighboring(tc.a); got != tc.want {
				t.Errorf("IsNeighboring is not symmetric for %v,%v", tc.a, tc.b)
			}
		})
	}
}

func TestNeighborsAreOrthogonal(t *testing.T) {
	p := Pt(3, 3)
	seen := make(map[Point]bool)
	for _, n := range p.Neighbors() {
		if p.Manhattan(n) != 1 {
			t.Errorf("neighbor %v of %v is not at distance 1", n, p)
		}
		seen[n] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct neighbors, got %d", len(seen))
	}
}

func TestAdd(t *testing.T) {
	if got := Pt(2, 3).Add(Pt(-1, 1)); got != Pt(1, 4) {
		t.Errorf("Add = %v, want (1,4)", got)
	}
}
