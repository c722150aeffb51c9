package system

import (
	"math/rand"

	"yendor/internal/being"
	"yendor/internal/gamemap"
)

// Hit records one blow exchanged between the player and an enemy.
type Hit struct {
	Enemy  being.Kind
	Damage int
}

// Kill records an enemy removed from the level and the experience it gave.
type Kill struct {
	Enemy being.Kind
	XP    int
}

// PlayerAttack resolves the player striking the enemy at index i.
func PlayerAttack(rng *rand.Rand, level *gamemap.Level, player *being.Being, i int) Hit {
	enemy := level.Enemies[i]
	return Hit{Enemy: enemy.Kind, Damage: player.Fight(rng, enemy)}
}

// EnemyAttack resolves enemy striking the player.
func EnemyAttack(rng *rand.Rand, enemy, player *being.Being) Hit {
	return Hit{Enemy: enemy.Kind, Damage: enemy.Fight(rng, player)}
}

// RemoveDead drops every dead enemy from level, keeping the order of the
// survivors, and credits the player with each one's experience.
func RemoveDead(level *gamemap.Level, player *being.Being) []Kill {
	var kills []Kill
	alive := level.Enemies[:0]
	for _, e := range level.Enemies {
		if e.Alive() {
			alive = append(alive, e)
			continue
		}
		player.Experience += e.Experience
		kills = append(kills, Kill{Enemy: e.Kind, XP: e.Experience})
	}
	clear(level.Enemies[len(alive):])
	level.Enemies = alive
	return kills
}
