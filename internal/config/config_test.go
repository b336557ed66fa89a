package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 8, cfg.Game.MaxPlayers)
	assert.Equal(t, 3, cfg.Game.InitialLives)
	assert.Equal(t, 10, cfg.Game.InitialTimerSeconds)
	assert.Equal(t, 0, cfg.Game.MinWordLength)
	assert.Equal(t, time.Second, cfg.Game.TickInterval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("GAME_MAX_PLAYERS", "4")
	t.Setenv("GAME_MIN_WORD_LENGTH", "3")
	t.Setenv("GAME_TICK_INTERVAL", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, 3, cfg.Game.MinWordLength)
	assert.Equal(t, 250*time.Millisecond, cfg.Game.TickInterval)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	t.Setenv("GAME_MAX_PLAYERS", "1")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_CollectsViolations(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Addr: ""},
		Logging: LoggingConfig{Level: "trace", Format: "xml"},
		Game: GameConfig{
			MaxPlayers:          1,
			InitialLives:        0,
			InitialTimerSeconds: 0,
			MinWordLength:       -1,
			TickInterval:        0,
		},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "addr")
	assert.Contains(t, err.Error(), "level")
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, err.Error(), "max players")
	assert.Contains(t, err.Error(), "tick interval")
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Addr: ":8080"},
		Logging: LoggingConfig{Level: "info", Format: "json"},
		Game: GameConfig{
			MaxPlayers:          8,
			InitialLives:        3,
			InitialTimerSeconds: 10,
			TickInterval:        time.Second,
		},
	}
	assert.NoError(t, cfg.Validate())
}
