package system

import (
	"math/rand"

	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// ProcessAI runs one turn for every enemy on level, in list order, and
// returns the hits landed on the player. Enemies see each other's moves from
// earlier in the same pass.
func ProcessAI(level *gamemap.Level, player *being.Being, turn uint32, rng *rand.Rand) []Hit {
	var hits []Hit
	for i := 0; i < len(level.Enemies); i++ {
		enemy := level.Enemies[i]

		var attacked bool
		switch enemy.Kind.Behavior() {
		case being.BehaviorPursue:
			attacked = pursue(level, enemy, player, turn)
		case being.BehaviorWander:
			attacked = wander(level, enemy, player, rng)
		case being.BehaviorStationary:
			attacked = enemy.Position.IsNeighboring(player.Position)
		}
		if attacked {
			hits = append(hits, EnemyAttack(rng, enemy, player))
		}
	}
	return hits
}

// pursue walks enemy one step along a shortest path to the player, but only
// while the player can see it. It reports whether the next step is the
// player's cell, in which case the enemy attacks instead of moving.
func pursue(level *gamemap.Level, enemy, player *being.Being, turn uint32) bool {
	if !level.Visible(enemy.Position, turn) {
		return false
	}
	path, ok := FindPath(enemy.Position, player.Position, func(p geom.Point) bool {
		return level.Tiles.At(p).Walkable() && !level.Occupied(p)
	})
	if !ok || len(path) < 2 {
		return false
	}
	if path[1] == player.Position {
		return true
	}
	enemy.Position = path[1]
	return false
}

// wander attacks an adjacent player, otherwise steps to a random free
// orthogonal neighbor.
func wander(level *gamemap.Level, enemy, player *being.Being, rng *rand.Rand) bool {
	if enemy.Position.IsNeighboring(player.Position) {
		return true
	}
	var free []geom.Point
	for _, n := range enemy.Position.Neighbors() {
		if n == player.Position || !level.IsWalkable(n) || level.Occupied(n) {
			continue
		}
		free = append(free, n)
	}
	if len(free) == 0 {
		return false
	}
	enemy.Position = free[rng.Intn(len(free))]
	return false
}
