// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `env:"SERVER_ADDR" envDefault:":8080"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// Format is the log output format: "json" or "console".
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// GameConfig holds the per-room game settings.
type GameConfig struct {
	// MaxPlayers caps the roster size of a room.
	MaxPlayers int `env:"GAME_MAX_PLAYERS" envDefault:"8"`
	// InitialLives is the number of lives each player starts with.
	InitialLives int `env:"GAME_INITIAL_LIVES" envDefault:"3"`
	// InitialTimerSeconds is the countdown for the first turns; it
	// tightens as the game progresses, flooring at five seconds.
	InitialTimerSeconds int `env:"GAME_INITIAL_TIMER_SECONDS" envDefault:"10"`
	// MinWordLength rejects shorter submissions as TooShort; zero
	// disables the check.
	MinWordLength int `env:"GAME_MIN_WORD_LENGTH" envDefault:"0"`
	// TickInterval is the countdown granularity. One second in
	// production; tests shrink it.
	TickInterval time.Duration `env:"GAME_TICK_INTERVAL" envDefault:"1s"`
}

// Config is the top-level application configuration.
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	Game    GameConfig
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks all configuration invariants, collecting every
// violation into one error.
func (c Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server: addr must not be empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging: unknown level %q", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging: unknown format %q", c.Logging.Format))
	}
	if c.Game.MaxPlayers < 2 {
		errs = append(errs, "game: max players must be at least 2")
	}
	if c.Game.InitialLives < 1 {
		errs = append(errs, "game: initial lives must be at least 1")
	}
	if c.Game.InitialTimerSeconds < 1 {
		errs = append(errs, "game: initial timer must be at least 1 second")
	}
	if c.Game.MinWordLength < 0 {
		errs = append(errs, "game: min word length must not be negative")
	}
	if c.Game.TickInterval <= 0 {
		errs = append(errs, "game: tick interval must be positive")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
