package game

import "yendor/internal/generate"

// LevelCount is the number of floors; descending from the last one wins.
const LevelCount = 25

func (c *Context) levelConfig(floor int) *generate.Config {
	return &generate.Config{
		Level:       floor,
		MaxAttempts: c.maxAttempts,
		Logger:      c.logger,
		Rand:        c.rng,
	}
}
