package tui

import (
	"yendor/internal/being"
	"yendor/internal/gamemap"
)

// Terrain glyphs. Remembered cells that are out of view are drawn with the
// dim variants; plain floor is only drawn while in view.
const (
	glyphWall       = "🧱"
	glyphDimWall    = "🌑"
	glyphFloor      = "·"
	glyphDoor       = "🚪"
	glyphStairsDown = "🔽"
	glyphStairsUp   = "🔼"
)

var beingGlyphs = map[being.Kind]string{
	being.Player:         "🧙",
	being.Gnoll:          "🐺",
	being.Bat:            "🦇",
	being.AnimatedStatue: "🗿",
	being.Kestrel:        "🦅",
	being.Emu:            "🐦",
	being.LazyImp:        "😈",
	being.Troll:          "👹",
	being.Zombie:         "🧟",
	being.StoneSatan:     "👿",
}

var itemGlyphs = map[gamemap.Item]string{
	gamemap.HealthBoost: "💊",
	gamemap.AttackBoost: "🔪",
	gamemap.ShieldBoost: "🪖",
}

// tileGlyph returns what to draw for tile, or "" to leave the cell blank.
func tileGlyph(tile gamemap.Tile, inView bool) string {
	switch tile.Kind {
	case gamemap.TileWall:
		if inView {
			return glyphWall
		}
		return glyphDimWall
	case gamemap.TileFloor:
		if inView {
			return glyphFloor
		}
		return ""
	case gamemap.TileDoor:
		return glyphDoor
	case gamemap.TileStairs:
		if tile.Stairs == gamemap.Up {
			return glyphStairsUp
		}
		return glyphStairsDown
	case gamemap.TileItem:
		return itemGlyphs[tile.Item]
	}
	return ""
}

func beingGlyph(k being.Kind) string {
	if g, ok := beingGlyphs[k]; ok {
		return g
	}
	return "?"
}
