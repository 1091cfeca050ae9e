package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BoardDefault, cfg.Board)
	assert.Equal(t, 100, cfg.BoardSize)
	assert.Equal(t, 9, cfg.Snakes)
	assert.Equal(t, 9, cfg.Ladders)
	assert.Equal(t, 6, cfg.DiceFaces)
	assert.Empty(t, cfg.DiceWeights)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SNAKELADDER_BOARD", "random")
	t.Setenv("SNAKELADDER_BOARD_SIZE", "64")
	t.Setenv("SNAKELADDER_DICE_FACES", "8")
	t.Setenv("SNAKELADDER_DICE_WEIGHTS", "1,0,0,0,0,5")
	t.Setenv("SNAKELADDER_SEED", "1234")
	t.Setenv("SNAKELADDER_LOG_LEVEL", "debug")
	t.Setenv("SNAKELADDER_OUTPUT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BoardRandom, cfg.Board)
	assert.Equal(t, 64, cfg.BoardSize)
	assert.Equal(t, 8, cfg.DiceFaces)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 5}, cfg.DiceWeights)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, OutputJSON, cfg.Output)
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	t.Setenv("SNAKELADDER_BOARD_SIZE", "huge")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Board: BoardDefault, BoardSize: 100, DiceFaces: 6, MaxTurns: 10, LogLevel: "info", Output: OutputText}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown board", mutate: func(c *Config) { c.Board = "spiral" }},
		{name: "unknown output", mutate: func(c *Config) { c.Output = "xml" }},
		{name: "zero size", mutate: func(c *Config) { c.BoardSize = 0 }},
		{name: "zero faces", mutate: func(c *Config) { c.DiceFaces = 0 }},
		{name: "negative dice weight", mutate: func(c *Config) { c.DiceWeights = []int{1, -1} }},
		{name: "negative snakes", mutate: func(c *Config) { c.Snakes = -1 }},
		{name: "zero max turns", mutate: func(c *Config) { c.MaxTurns = 0 }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
