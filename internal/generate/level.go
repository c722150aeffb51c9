// Package generate builds complete dungeon floors: chained rooms and
// corridors, pillars and doors, items and a weighted enemy population.
package generate

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"yendor/internal/gamemap"
	"yendor/internal/geom"
)

// DefaultMaxAttempts bounds every rejection-sampling loop.
const DefaultMaxAttempts = 1000

// ChainRooms is the number of rooms carved after the first one and before
// the final one.
const ChainRooms = 10

// DecorAttempts is how many random floor cells are considered for pillars
// and doors.
const DecorAttempts = 50

// ErrPlacementExhausted is returned when a sampling loop runs out of attempts.
var ErrPlacementExhausted = errors.New("placement attempts exhausted")

// Config drives procedural generation for one floor.
type Config struct {
	Level       int // 1-indexed floor number
	MaxAttempts int // 0 means DefaultMaxAttempts
	Logger      *slog.Logger
	Rand        *rand.Rand
}

func (cfg *Config) attempts() int {
	if cfg.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return cfg.MaxAttempts
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return cfg.Logger
}

// Generate carves and populates a complete floor.
func Generate(cfg *Config) (*gamemap.Level, error) {
	rng := cfg.Rand
	tiles := gamemap.NewGrid(gamemap.Wall())

	first := Room(rng)
	carveRoom(tiles, first)

	prev := first
	for range ChainRooms {
		room := Room(rng)
		carveRoom(tiles, room)
		carveCorridorBetween(rng, tiles, prev, room)
		prev = room
	}

	last, err := RoomNotOverlapping(rng, first, cfg.attempts())
	if err != nil {
		cfg.logger().Warn("generate: final room", "level", cfg.Level, "error", err)
		return nil, fmt.Errorf("generate level %d: %w", cfg.Level, err)
	}
	carveRoom(tiles, last)
	carveCorridorBetween(rng, tiles, prev, last)

	up := InnerPoint(rng, first)
	tiles.Set(up, gamemap.StairsUp())
	down := InnerPoint(rng, last)
	tiles.Set(down, gamemap.StairsDown())

	if err := decorate(tiles, cfg); err != nil {
		return nil, fmt.Errorf("generate level %d: %w", cfg.Level, err)
	}
	items, err := placeItems(tiles, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate level %d: %w", cfg.Level, err)
	}
	enemies, err := populateEnemies(tiles, cfg)
	if err != nil {
		return nil, fmt.Errorf("generate level %d: %w", cfg.Level, err)
	}

	cfg.logger().Debug("level generated",
		"level", cfg.Level,
		"up", up,
		"down", down,
		"items", items,
		"enemies", len(enemies),
	)
	return gamemap.NewLevel(tiles, up, down, enemies), nil
}

// decorate turns random open floor cells into pillars and narrow junctions
// into doors.
func decorate(tiles gamemap.Grid[gamemap.Tile], cfg *Config) error {
	for range DecorAttempts {
		p, err := randomFloorPoint(tiles, cfg)
		if err != nil {
			return err
		}
		if isPillarWorthy(tiles, p) {
			tiles.Set(p, gamemap.Wall())
		} else if isDoorWorthy(tiles, p) {
			tiles.Set(p, gamemap.Door())
		}
	}
	return nil
}

// isPillarWorthy reports whether p and its whole 3×3 neighborhood are floor.
func isPillarWorthy(tiles gamemap.Grid[gamemap.Tile], p geom.Point) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if tiles.AtXY(p.X+dx, p.Y+dy).Kind != gamemap.TileFloor {
				return false
			}
		}
	}
	return true
}

// isDoorWorthy reports whether p sits between matching cells on one axis
// that differ from the matching cells on the other axis.
func isDoorWorthy(tiles gamemap.Grid[gamemap.Tile], p geom.Point) bool {
	n := tiles.AtXY(p.X, p.Y-1)
	s := tiles.AtXY(p.X, p.Y+1)
	w := tiles.AtXY(p.X-1, p.Y)
	e := tiles.AtXY(p.X+1, p.Y)
	return n == s && w == e && n != w
}

// randomFloorPoint samples interior cells until it finds plain floor.
func randomFloorPoint(tiles gamemap.Grid[gamemap.Tile], cfg *Config) (geom.Point, error) {
	whole := gamemap.NewRect(0, 0, geom.Width-1, geom.Height-1)
	for range cfg.attempts() {
		p := InnerPoint(cfg.Rand, whole)
		if tiles.At(p).Kind == gamemap.TileFloor {
			return p, nil
		}
	}
	cfg.logger().Warn("generate: no floor cell found", "level", cfg.Level, "attempts", cfg.attempts())
	return geom.Point{}, fmt.Errorf("floor cell: %w", ErrPlacementExhausted)
}
