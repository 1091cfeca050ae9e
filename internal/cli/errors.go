package cli

import (
	"errors"
	"fmt"

	"github.com/mcoot/snakeladder/internal/model"
)

// userError rewrites domain errors into messages for the terminal
func userError(err error) error {
	if err == nil {
		return nil
	}

	var cfgErr *model.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return fmt.Errorf("cannot build board: %s", cfgErr.Reason)
	case errors.Is(err, model.ErrInsufficientPlayers):
		return errors.New("at least 2 players are needed to start a game")
	case errors.Is(err, model.ErrInvalidPlayerName):
		return errors.New("player names must not be blank")
	case errors.Is(err, model.ErrDuplicatePlayerName):
		return errors.New("player names must be unique")
	case errors.Is(err, model.ErrTurnLimitReached):
		return fmt.Errorf("no winner: %w", err)
	case errors.Is(err, model.ErrInvalidDice):
		return fmt.Errorf("cannot build dice: %w", err)
	default:
		return err
	}
}
