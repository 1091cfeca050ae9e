package storage

import (
	"context"

	"github.com/mcoot/snakeladder/internal/model"
)

// Storage keeps boards and finished-game records for the lifetime of the process
type Storage interface {
	// Board operations
	SaveBoard(ctx context.Context, board *model.Board) error
	GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error)
	BoardExists(ctx context.Context, id model.BoardID) (bool, error)

	// Game summary operations
	SaveGameSummary(ctx context.Context, summary *model.GameSummary) error
	ListGameSummaries(ctx context.Context, boardID model.BoardID) ([]*model.GameSummary, error)
}
