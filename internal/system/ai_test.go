package system

import (
	"math/rand"
	"testing"

	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// corridorLevel returns a level that is wall except for the row y=5 from
// x=1 to x=20.
func corridorLevel() *gamemap.Level {
	tiles := gamemap.NewGrid(gamemap.Wall())
	for x := 1; x <= 20; x++ {
		tiles.SetXY(x, 5, gamemap.Floor())
	}
	return gamemap.NewLevel(tiles, geom.Pt(1, 5), geom.Pt(20, 5), nil)
}

func addEnemy(level *gamemap.Level, kind being.Kind, p geom.Point) *being.Being {
	e := being.New(kind, p)
	level.Enemies = append(level.Enemies, e)
	return e
}

func playerAt(p geom.Point) *being.Being {
	player := being.NewPlayer()
	player.Position = p
	return player
}

func TestAIStationaryAttacksOnlyWhenAdjacent(t *testing.T) {
	cases := []struct {
		name     string
		enemyPos geom.Point
		wantHits int
	}{
		{"adjacent", geom.Pt(6, 5), 1},
		{"diagonal", geom.Pt(6, 6), 0},
		{"far", geom.Pt(9, 5), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(0))
			level := openLevel()
			player := playerAt(geom.Pt(5, 5))
			enemy := addEnemy(level, being.StoneSatan, tc.enemyPos)
			UpdateFOV(level, player.Position, 1)

			hits := ProcessAI(level, player, 1, rng)
			if len(hits) != tc.wantHits {
				t.Fatalf("got %d hits; want %d", len(hits), tc.wantHits)
			}
			if enemy.Position != tc.enemyPos {
				t.Errorf("stationary enemy moved from %v to %v", tc.enemyPos, enemy.Position)
			}
		})
	}
}

func TestAIHitsCarryKindAndDamage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	addEnemy(level, being.LazyImp, geom.Pt(5, 6))

	hp := player.Health
	hits := ProcessAI(level, player, 1, rng)
	if len(hits) != 1 || hits[0].Enemy != being.LazyImp {
		t.Fatalf("expected one hit from a Lazy Imp, got %v", hits)
	}
	if player.Health != hp-hits[0].Damage {
		t.Errorf("player health %d; want %d", player.Health, hp-hits[0].Damage)
	}
}

func TestAIWandererAttacksWhenAdjacent(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	bat := addEnemy(level, being.Bat, geom.Pt(5, 4))

	hits := ProcessAI(level, player, 1, rng)
	if len(hits) != 1 {
		t.Fatalf("adjacent wanderer should attack; got %d hits", len(hits))
	}
	if bat.Position != geom.Pt(5, 4) {
		t.Errorf("attacking wanderer moved to %v", bat.Position)
	}
}

func TestAIWandererStepsToFreeNeighbor(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		level := openLevel()
		player := playerAt(geom.Pt(5, 5))
		start := geom.Pt(20, 10)
		emu := addEnemy(level, being.Emu, start)
		blocker := addEnemy(level, being.AnimatedStatue, geom.Pt(21, 10))
		level.Tiles.SetXY(20, 9, gamemap.Wall())

		if hits := ProcessAI(level, player, 1, rng); len(hits) != 0 {
			t.Fatalf("seed=%d: distant enemies attacked", seed)
		}
		if emu.Position.Manhattan(start) != 1 {
			t.Fatalf("seed=%d: wanderer moved from %v to %v", seed, start, emu.Position)
		}
		if emu.Position == blocker.Position || emu.Position == geom.Pt(20, 9) {
			t.Fatalf("seed=%d: wanderer stepped onto a blocked cell %v", seed, emu.Position)
		}
	}
}

func TestAIWandererBoxedInStays(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	start := geom.Pt(20, 10)
	zombie := addEnemy(level, being.Zombie, start)
	for _, n := range start.Neighbors() {
		level.Tiles.Set(n, gamemap.Wall())
	}

	ProcessAI(level, player, 1, rng)
	if zombie.Position != start {
		t.Errorf("boxed-in wanderer moved to %v", zombie.Position)
	}
}

func TestAIPursuerIgnoresPlayerWhenUnseen(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	start := geom.Pt(15, 5)
	gnoll := addEnemy(level, being.Gnoll, start)
	// Nothing stamped for turn 1.

	ProcessAI(level, player, 1, rng)
	if gnoll.Position != start {
		t.Errorf("unseen pursuer moved to %v", gnoll.Position)
	}
}

func TestAIPursuerClosesIn(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	start := geom.Pt(15, 9)
	troll := addEnemy(level, being.Troll, start)
	UpdateFOV(level, player.Position, 1)

	if hits := ProcessAI(level, player, 1, rng); len(hits) != 0 {
		t.Fatalf("distant pursuer attacked")
	}
	if got, want := troll.Position.Manhattan(player.Position), start.Manhattan(player.Position)-1; got != want {
		t.Errorf("pursuer is %d away; want %d", got, want)
	}
}

func TestAIPursuerAttacksWhenAdjacent(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := openLevel()
	player := playerAt(geom.Pt(5, 5))
	kestrel := addEnemy(level, being.Kestrel, geom.Pt(6, 5))
	UpdateFOV(level, player.Position, 1)

	hits := ProcessAI(level, player, 1, rng)
	if len(hits) != 1 || hits[0].Enemy != being.Kestrel {
		t.Fatalf("adjacent pursuer should attack once, got %v", hits)
	}
	if kestrel.Position != geom.Pt(6, 5) {
		t.Errorf("attacking pursuer moved to %v", kestrel.Position)
	}
}

func TestAIPursuerBlockedByOtherEnemy(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	level := corridorLevel()
	player := playerAt(geom.Pt(1, 5))
	addEnemy(level, being.AnimatedStatue, geom.Pt(3, 5))
	gnoll := addEnemy(level, being.Gnoll, geom.Pt(6, 5))
	UpdateFOV(level, player.Position, 1)
	level.LastSeen.Set(gnoll.Position, 1)

	ProcessAI(level, player, 1, rng)
	if gnoll.Position != geom.Pt(6, 5) {
		t.Errorf("pursuer with no free path moved to %v", gnoll.Position)
	}
}

// TestAIOrderDependent checks that an enemy processed later sees the moves
// of enemies processed earlier in the same pass: both pursuers need (5,6) and
// whichever is first in the list takes it.
func TestAIOrderDependent(t *testing.T) {
	for _, firstIsA := range []bool{true, false} {
		rng := rand.New(rand.NewSource(0))
		level := openLevel()
		level.Tiles.SetXY(6, 5, gamemap.Wall())
		player := playerAt(geom.Pt(5, 5))
		a := being.New(being.Gnoll, geom.Pt(5, 7))
		b := being.New(being.Troll, geom.Pt(6, 6))
		first, second := a, b
		if !firstIsA {
			first, second = b, a
		}
		level.Enemies = []*being.Being{first, second}
		level.LastSeen.Set(a.Position, 1)
		level.LastSeen.Set(b.Position, 1)

		if hits := ProcessAI(level, player, 1, rng); len(hits) != 0 {
			t.Fatalf("firstIsA=%v: no pursuer starts adjacent, got %d hits", firstIsA, len(hits))
		}
		if first.Position != geom.Pt(5, 6) {
			t.Errorf("firstIsA=%v: first pursuer at %v; want (5,6)", firstIsA, first.Position)
		}
		if second.Position == geom.Pt(5, 6) {
			t.Errorf("firstIsA=%v: second pursuer moved onto the first", firstIsA)
		}
	}
}
