// Package config loads front-end settings: environment variables first, then
// command-line flags, which win.
package config

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by the terminal and SSH binaries.
type Config struct {
	// Seed makes games reproducible; 0 picks a time-based seed.
	Seed     int64  `env:"YENDOR_SEED"`
	Port     int    `env:"YENDOR_SSH_PORT" envDefault:"2222"`
	HostKey  string `env:"YENDOR_HOST_KEY" envDefault:"server_host_key"`
	LogLevel string `env:"YENDOR_LOG_LEVEL" envDefault:"info"`
	// LogFile receives the log of the terminal binary, which cannot log to
	// the screen it draws on. Empty disables logging there.
	LogFile string `env:"YENDOR_LOG_FILE"`
}

// Load reads the environment and then parses args (without the program
// name) as flags of the command called name.
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "game seed (0 = random)")
	fs.IntVar(&cfg.Port, "port", cfg.Port, "SSH server port")
	fs.StringVar(&cfg.HostKey, "key", cfg.HostKey, "path to the PEM-encoded host key (auto-generated if absent)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if _, err := cfg.SlogLevel(); err != nil {
		return Config{}, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}
	return cfg, nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// NewRand returns the random source for a new game.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
