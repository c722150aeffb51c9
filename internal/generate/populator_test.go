package generate

import (
	"math/rand"
	"testing"

	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

func TestTierWeights(t *testing.T) {
	cases := []struct {
		level int
		want  [3]int
	}{
		{1, [3]int{2, 0, 0}},
		{5, [3]int{6, 1, 0}},
		{6, [3]int{6, 2, 0}},
		{10, [3]int{2, 6, 0}},
		{12, [3]int{0, 8, 0}},
		{16, [3]int{0, 4, 4}},
		{20, [3]int{0, 0, 6}},
		{25, [3]int{0, 0, 1}},
		{26, [3]int{0, 0, 0}},
	}
	for _, tc := range cases {
		if got := TierWeights(tc.level); got != tc.want {
			t.Errorf("TierWeights(%d) = %v; want %v", tc.level, got, tc.want)
		}
	}
}

func TestTierWeightsNeverNegative(t *testing.T) {
	for level := -5; level <= 40; level++ {
		for tier, w := range TierWeights(level) {
			if w < 0 {
				t.Errorf("level %d tier %d weight %d < 0", level, tier+1, w)
			}
		}
	}
}

func TestEnemyWeightsSplitFiveThreeTwo(t *testing.T) {
	got := EnemyWeights(6) // tiers 6, 2, 0
	want := [9]int{30, 18, 12, 10, 6, 4, 0, 0, 0}
	if got != want {
		t.Errorf("EnemyWeights(6) = %v; want %v", got, want)
	}
}

func TestEnemyCount(t *testing.T) {
	cases := map[int]int{1: 6, 2: 7, 3: 7, 10: 11, 25: 18}
	for level, want := range cases {
		if got := EnemyCount(level); got != want {
			t.Errorf("EnemyCount(%d) = %d; want %d", level, got, want)
		}
	}
}

func TestPickWeighted(t *testing.T) {
	weights := []int{0, 3, 0, 2}
	cases := []struct {
		roll, want int
	}{
		{0, 1}, {2, 1}, {3, 3}, {4, 3},
	}
	for _, tc := range cases {
		if got := pickWeighted(tc.roll, weights); got != tc.want {
			t.Errorf("pickWeighted(%d) = %d; want %d", tc.roll, got, tc.want)
		}
	}
}

func TestPopulateOnlyTierOneOnFirstFloor(t *testing.T) {
	tierOne := map[being.Kind]bool{being.Gnoll: true, being.Bat: true, being.AnimatedStatue: true}
	for seed := int64(0); seed < 20; seed++ {
		cfg := testConfig(1, seed)
		lvl := generateOrFatal(t, cfg)
		for _, e := range lvl.Enemies {
			if !tierOne[e.Kind] {
				t.Errorf("seed=%d: %v spawned on floor 1", seed, e.Kind)
			}
		}
	}
}

func TestPopulateNoEnemiesWhenAllWeightsZero(t *testing.T) {
	tiles := gamemap.NewGrid(gamemap.Floor())
	cfg := &Config{Level: 30, Rand: rand.New(rand.NewSource(1))}
	enemies, err := populateEnemies(tiles, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(enemies) != 0 {
		t.Errorf("expected no enemies past the last tier, got %d", len(enemies))
	}
}

func TestPlaceItemsInsideCarvedArea(t *testing.T) {
	room := gamemap.NewRect(10, 5, 8, 8)
	for seed := int64(0); seed < 20; seed++ {
		tiles := gamemap.NewGrid(gamemap.Wall())
		carveRoom(tiles, room)
		cfg := &Config{Level: 1, Rand: rand.New(rand.NewSource(seed))}
		items, err := placeItems(tiles, cfg)
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		if len(items) > len(ItemChance) {
			t.Fatalf("seed=%d: placed %d items", seed, len(items))
		}

		found := 0
		for y := 0; y < geom.Height; y++ {
			for x := 0; x < geom.Width; x++ {
				if tiles.AtXY(x, y).Kind != gamemap.TileItem {
					continue
				}
				found++
				if !room.Contains(geom.Pt(x, y)) {
					t.Errorf("seed=%d: item at (%d,%d) outside the room", seed, x, y)
				}
			}
		}
		if found != len(items) {
			t.Errorf("seed=%d: %d item tiles for %d placed items", seed, found, len(items))
		}
	}
}
