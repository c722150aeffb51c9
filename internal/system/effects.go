package system

import (
	"yendor/internal/being"
	"yendor/internal/gamemap"
)

// RegenInterval is how many turns pass between regeneration ticks.
const RegenInterval = 10

// ApplyItem gives b the permanent effect of item.
func ApplyItem(b *being.Being, item gamemap.Item) {
	switch item {
	case gamemap.HealthBoost:
		b.MaxHealth++
		b.Health = b.MaxHealth
	case gamemap.AttackBoost:
		b.MaxAttack++
	case gamemap.ShieldBoost:
		b.MaxShield++
	}
}

// PickUp applies the item under the player, if any, and clears the tile.
func PickUp(level *gamemap.Level, player *being.Being) (gamemap.Item, bool) {
	tile := level.Tiles.At(player.Position)
	if tile.Kind != gamemap.TileItem {
		return 0, false
	}
	ApplyItem(player, tile.Item)
	level.Tiles.Set(player.Position, gamemap.Floor())
	return tile.Item, true
}

// Regenerate heals the player and every enemy on level by one point on
// turns that are a multiple of RegenInterval. It reports whether it ticked.
func Regenerate(level *gamemap.Level, player *being.Being, turn uint32) bool {
	if turn%RegenInterval != 0 {
		return false
	}
	player.BumpHealth()
	for _, e := range level.Enemies {
		e.BumpHealth()
	}
	return true
}
