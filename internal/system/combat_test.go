package system

import (
	"math/rand"
	"testing"

	"yendor/internal/being"
	"yendor/internal/geom"
)

func TestPlayerAttackDamagesEnemy(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		level := openLevel()
		player := playerAt(geom.Pt(5, 5))
		enemy := addEnemy(level, being.StoneSatan, geom.Pt(6, 5))
		before := enemy.Health

		hit := PlayerAttack(rng, level, player, 0)
		if hit.Enemy != being.StoneSatan {
			t.Fatalf("hit names %v; want Stone Satan", hit.Enemy)
		}
		if hit.Damage < 0 || hit.Damage > player.MaxAttack {
			t.Fatalf("iteration %d: damage %d outside [0,%d]", i, hit.Damage, player.MaxAttack)
		}
		if enemy.Health != before-hit.Damage {
			t.Fatalf("HP not reduced correctly: before=%d after=%d damage=%d", before, enemy.Health, hit.Damage)
		}
	}
}

func TestRemoveDeadKeepsOrderAndAwardsXP(t *testing.T) {
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	a := addEnemy(level, being.Gnoll, geom.Pt(10, 5))
	dead1 := addEnemy(level, being.Bat, geom.Pt(11, 5))
	b := addEnemy(level, being.Emu, geom.Pt(12, 5))
	dead2 := addEnemy(level, being.Troll, geom.Pt(13, 5))
	c := addEnemy(level, being.Zombie, geom.Pt(14, 5))
	dead1.Health = 0
	dead2.Health = -3

	kills := RemoveDead(level, player)

	want := []Kill{
		{Enemy: being.Bat, XP: dead1.Experience},
		{Enemy: being.Troll, XP: dead2.Experience},
	}
	if len(kills) != len(want) {
		t.Fatalf("got %d kills; want %d", len(kills), len(want))
	}
	for i := range want {
		if kills[i] != want[i] {
			t.Errorf("kill %d = %+v; want %+v", i, kills[i], want[i])
		}
	}
	if player.Experience != dead1.Experience+dead2.Experience {
		t.Errorf("player XP %d; want %d", player.Experience, dead1.Experience+dead2.Experience)
	}
	survivors := []*being.Being{a, b, c}
	if len(level.Enemies) != len(survivors) {
		t.Fatalf("%d enemies left; want %d", len(level.Enemies), len(survivors))
	}
	for i, e := range survivors {
		if level.Enemies[i] != e {
			t.Errorf("enemy %d is %v; want %v", i, level.Enemies[i].Kind, e.Kind)
		}
	}
}

func TestRemoveDeadNothingToRemove(t *testing.T) {
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	addEnemy(level, being.Gnoll, geom.Pt(10, 5))

	if kills := RemoveDead(level, player); len(kills) != 0 {
		t.Errorf("expected no kills, got %v", kills)
	}
	if len(level.Enemies) != 1 || player.Experience != 0 {
		t.Errorf("live enemy removed or XP awarded")
	}
}
