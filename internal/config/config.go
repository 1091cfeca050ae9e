// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Board kinds
const (
	BoardDefault = "default"
	BoardRandom  = "random"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds game and CLI settings. Command-line flags override these values.
type Config struct {
	Board     string `env:"SNAKELADDER_BOARD"      envDefault:"default"`
	BoardSize int    `env:"SNAKELADDER_BOARD_SIZE" envDefault:"100"`
	Snakes    int    `env:"SNAKELADDER_SNAKES"     envDefault:"9"`
	Ladders   int    `env:"SNAKELADDER_LADDERS"    envDefault:"9"`
	DiceFaces int    `env:"SNAKELADDER_DICE_FACES" envDefault:"6"`
	// DiceWeights loads the die, one weight per face; it replaces DiceFaces when set
	DiceWeights []int `env:"SNAKELADDER_DICE_WEIGHTS" envSeparator:","`
	// Seed makes dice and random boards reproducible; 0 uses entropy from the OS
	Seed     uint64 `env:"SNAKELADDER_SEED"      envDefault:"0"`
	MaxTurns int    `env:"SNAKELADDER_MAX_TURNS" envDefault:"10000"`
	LogLevel string `env:"SNAKELADDER_LOG_LEVEL" envDefault:"warn"`
	Output   string `env:"SNAKELADDER_OUTPUT"    envDefault:"text"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that the environment parser cannot
func (c *Config) Validate() error {
	switch c.Board {
	case BoardDefault, BoardRandom:
	default:
		return fmt.Errorf("board must be %q or %q, got %q", BoardDefault, BoardRandom, c.Board)
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputText, OutputJSON, c.Output)
	}
	if c.BoardSize < 1 {
		return fmt.Errorf("board size must be positive, got %d", c.BoardSize)
	}
	if c.DiceFaces < 1 {
		return fmt.Errorf("dice faces must be positive, got %d", c.DiceFaces)
	}
	for i, w := range c.DiceWeights {
		if w < 0 {
			return fmt.Errorf("dice weight for face %d must not be negative, got %d", i+1, w)
		}
	}
	if c.Snakes < 0 || c.Ladders < 0 {
		return fmt.Errorf("snake and ladder counts must not be negative")
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("max turns must be positive, got %d", c.MaxTurns)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured slog level
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// ParseLevel maps a level name to a slog level
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}
