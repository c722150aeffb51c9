// Package game is the turn engine: it owns the current level and the player
// and advances the whole world by one step per player action.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"yendor/internal/being"
	"yendor/internal/gamemap"
	"yendor/internal/generate"
	"yendor/internal/system"
)

// Context is the complete state of one game. Callers read its fields freely
// between turns; NextTurn is the only method that changes them. A Context is
// not safe for concurrent use.
type Context struct {
	Level *gamemap.Level
	// Floor is the current floor number, 1..LevelCount.
	Floor int
	// Turn starts at 1 and grows by one per processed action.
	Turn   uint32
	Player *being.Being
	// Events holds what happened during the most recent turn only.
	Events []Event

	rng         *rand.Rand
	logger      *slog.Logger
	maxAttempts int
}

// Option configures a Context.
type Option func(*Context)

// WithRand makes the game draw all randomness from rng.
func WithRand(rng *rand.Rand) Option {
	return func(c *Context) { c.rng = rng }
}

// WithSeed makes the game reproducible: the same seed and the same actions
// give the same game.
func WithSeed(seed int64) Option {
	return func(c *Context) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger sets the logger for floor transitions and game outcomes.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// New creates a game on its first floor with the player on the up stairs
// and the initial field of view computed.
func New(opts ...Option) (*Context, error) {
	c := &Context{
		Floor:  1,
		Turn:   1,
		Player: being.NewPlayer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	if err := c.loadFloor(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	return c, nil
}

// loadFloor generates c.Floor and puts the player on its up stairs. On error
// the current level is left untouched.
func (c *Context) loadFloor() error {
	level, err := generate.Generate(c.levelConfig(c.Floor))
	if err != nil {
		return err
	}
	c.Level = level
	c.Player.Position = level.UpStairs
	system.UpdateFOV(c.Level, c.Player.Position, c.Turn)
	c.logger.Debug("floor entered",
		"floor", c.Floor,
		"turn", c.Turn,
		"enemies", len(level.Enemies),
	)
	return nil
}

// NextTurn resolves one player action followed by every enemy's reaction.
// It only fails when a new floor cannot be generated; the game then stays on
// the current floor as if the action had not been taken.
func (c *Context) NextTurn(action Action) error {
	c.Events = nil
	c.Turn++

	switch action.Kind {
	case ActionMove:
		res, i := system.TryMove(c.Level, c.Player, action.Offset)
		if res == system.MoveAttack {
			hit := system.PlayerAttack(c.rng, c.Level, c.Player, i)
			c.emit(Attacked(hit.Enemy, hit.Damage))
		}
	case ActionSelect:
		done, err := c.selectHere()
		if err != nil {
			c.Turn--
			return err
		}
		if done {
			return nil
		}
	}

	for _, k := range system.RemoveDead(c.Level, c.Player) {
		c.emit(Killed(k.Enemy, k.XP))
	}

	system.UpdateFOV(c.Level, c.Player.Position, c.Turn)

	for _, h := range system.ProcessAI(c.Level, c.Player, c.Turn, c.rng) {
		c.emit(GotAttacked(h.Enemy, h.Damage))
	}

	if !c.Player.Alive() {
		c.emit(Died(c.Player.Experience))
		c.logger.Info("game lost", "floor", c.Floor, "turn", c.Turn, "xp", c.Player.Experience)
		return nil
	}

	tile := c.Level.Tiles.At(c.Player.Position)
	switch {
	case tile.Kind == gamemap.TileItem:
		c.emit(OnItem(tile.Item))
	case tile.IsDownStairs():
		c.emit(OnStairs())
	}

	system.Regenerate(c.Level, c.Player, c.Turn)
	return nil
}

// selectHere interacts with the player's tile. done reports that the turn
// ended early: the game was won or a new floor was entered.
func (c *Context) selectHere() (done bool, err error) {
	tile := c.Level.Tiles.At(c.Player.Position)
	switch {
	case tile.IsDownStairs():
		if c.Floor >= LevelCount {
			c.emit(Won(c.Player.Experience))
			c.logger.Info("game won", "turn", c.Turn, "xp", c.Player.Experience)
			return true, nil
		}
		c.Floor++
		if err := c.loadFloor(); err != nil {
			c.Floor--
			return true, fmt.Errorf("descend to floor %d: %w", c.Floor+1, err)
		}
		return true, nil
	case tile.Kind == gamemap.TileItem:
		system.PickUp(c.Level, c.Player)
	}
	return false, nil
}

func (c *Context) emit(e Event) {
	c.Events = append(c.Events, e)
}

// Over reports whether the last turn ended the game. Callers should stop
// calling NextTurn once it returns true.
func (c *Context) Over() bool {
	for _, e := range c.Events {
		if e.Terminal() {
			return true
		}
	}
	return false
}
