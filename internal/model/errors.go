package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Board errors
	ErrInvalidBoard  = errors.New("invalid board configuration")
	ErrBoardNotFound = errors.New("board not found")

	// Dice errors
	ErrInvalidDice = errors.New("invalid dice configuration")

	// Player errors
	ErrInvalidPlayerName   = errors.New("player name must not be empty")
	ErrDuplicatePlayerName = errors.New("player name is already taken")

	// Game errors
	ErrInsufficientPlayers = errors.New("insufficient players to start game")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrGameInProgress      = errors.New("game is in progress")
	ErrGameAlreadyWon      = errors.New("game has already been won")
	ErrNothingToUndo       = errors.New("no turn to undo")
	ErrTurnLimitReached    = errors.New("turn limit reached without a winner")
)

// ConfigurationError describes why a board was rejected at construction.
// It matches ErrInvalidBoard with errors.Is.
type ConfigurationError struct {
	Reason string
}

// NewConfigurationError formats a ConfigurationError
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return "invalid board configuration: " + e.Reason
}

// Is reports whether target is ErrInvalidBoard
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidBoard
}
