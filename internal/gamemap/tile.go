package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileStairs
	TileDoor
	TileItem
)

// Item is a pickup lying on an item tile.
type Item uint8

const (
	HealthBoost Item = iota
	AttackBoost
	ShieldBoost
)

// String returns the display name used in event messages.
func (i Item) String() string {
	switch i {
	case HealthBoost:
		return "Health Boost"
	case AttackBoost:
		return "Attack Boost"
	case ShieldBoost:
		return "Shield Boost"
	}
	return "Unknown Item"
}

// Stair directions stored in Tile.Stairs.
const (
	Up   = -1
	Down = 1
)

// Tile is one map cell. Stairs is only meaningful for TileStairs and Item
// only for TileItem.
type Tile struct {
	Kind   TileKind
	Stairs int
	Item   Item
}

// Wall returns a blocking, opaque wall tile.
func Wall() Tile { return Tile{Kind: TileWall} }

// Floor returns a plain walkable floor tile.
func Floor() Tile { return Tile{Kind: TileFloor} }

// Door returns a walkable tile that blocks sight.
func Door() Tile { return Tile{Kind: TileDoor} }

// StairsUp returns an upward staircase tile.
func StairsUp() Tile { return Tile{Kind: TileStairs, Stairs: Up} }

// StairsDown returns a downward staircase tile.
func StairsDown() Tile { return Tile{Kind: TileStairs, Stairs: Down} }

// ItemTile returns a floor tile holding item.
func ItemTile(item Item) Tile { return Tile{Kind: TileItem, Item: item} }

// Walkable reports whether beings may stand on the tile. Only walls block.
func (t Tile) Walkable() bool {
	return t.Kind != TileWall
}

// Opaque reports whether the tile blocks sight. Walls and doors do.
func (t Tile) Opaque() bool {
	return t.Kind == TileWall || t.Kind == TileDoor
}

// IsDownStairs reports whether the tile leads to the next floor.
func (t Tile) IsDownStairs() bool {
	return t.Kind == TileStairs && t.Stairs == Down
}

// Name returns a short human-readable label for the tile.
func (t Tile) Name() string {
	switch t.Kind {
	case TileWall:
		return "Wall"
	case TileFloor:
		return "Room"
	case TileDoor:
		return "Door"
	case TileStairs:
		return "Stairs"
	case TileItem:
		switch t.Item {
		case HealthBoost:
			return "Health boost"
		case AttackBoost:
			return "Attack boost"
		case ShieldBoost:
			return "Shield boost"
		}
	}
	return "Unknown"
}
