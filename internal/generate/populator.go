package generate

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// ItemChance is the percent chance that each item kind appears on a floor.
var ItemChance = [...]struct {
	Item    gamemap.Item
	Percent int
}{
	{gamemap.HealthBoost, 50},
	{gamemap.AttackBoost, 40},
	{gamemap.ShieldBoost, 40},
}

// tierSplit weights the three kinds inside one tier.
var tierSplit = [3]int{5, 3, 2}

// TierWeights returns the spawn weight of each enemy tier on level. Each
// tier ramps up, plateaus and fades out as the floor number grows.
func TierWeights(level int) [3]int {
	return [3]int{
		max(0, min(level+1, 12-level)),
		max(0, min(level-4, 20-level)),
		max(0, min(level-12, 26-level)),
	}
}

// EnemyWeights spreads the tier weights over being.Enemies.
func EnemyWeights(level int) [9]int {
	var out [9]int
	for tier, tw := range TierWeights(level) {
		for i, split := range tierSplit {
			out[tier*3+i] = tw * split
		}
	}
	return out
}

// EnemyCount is how many spawn draws a floor gets.
func EnemyCount(level int) int {
	return 6 + level/2
}

// placeItems rolls each item kind independently and drops it on a random
// floor cell. It returns the items placed.
func placeItems(tiles gamemap.Grid[gamemap.Tile], cfg *Config) ([]gamemap.Item, error) {
	var placed []gamemap.Item
	for _, ic := range ItemChance {
		if cfg.Rand.Intn(100) >= ic.Percent {
			continue
		}
		p, err := randomFloorPoint(tiles, cfg)
		if err != nil {
			return nil, fmt.Errorf("place %v: %w", ic.Item, err)
		}
		tiles.Set(p, gamemap.ItemTile(ic.Item))
		placed = append(placed, ic.Item)
	}
	return placed, nil
}

// populateEnemies draws EnemyCount enemies by weight. A draw that lands on
// a cell already taken by an earlier enemy is skipped.
func populateEnemies(tiles gamemap.Grid[gamemap.Tile], cfg *Config) ([]*being.Being, error) {
	weights := EnemyWeights(cfg.Level)
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil, nil
	}

	occupied := mapset.New[geom.Point]()
	var enemies []*being.Being
	for range EnemyCount(cfg.Level) {
		p, err := randomFloorPoint(tiles, cfg)
		if err != nil {
			return nil, fmt.Errorf("place enemy: %w", err)
		}
		if occupied.Has(p) {
			continue
		}
		kind := being.Enemies[pickWeighted(cfg.Rand.Intn(total), weights[:])]
		occupied.Put(p)
		enemies = append(enemies, being.Spawn(cfg.Rand, kind, p))
	}
	return enemies, nil
}

// pickWeighted maps roll in [0, sum(weights)) to the index it falls into.
func pickWeighted(roll int, weights []int) int {
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
