package memory

import (
	"context"
	"sync"

	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	boards    map[model.BoardID]*model.Board
	summaries []*model.GameSummary // In completion order
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		boards: make(map[model.BoardID]*model.Board),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Board operations

func (s *Storage) SaveBoard(ctx context.Context, board *model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boards[board.ID] = board
	return nil
}

func (s *Storage) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	board, ok := s.boards[id]
	if !ok {
		return nil, model.ErrBoardNotFound
	}
	return board, nil
}

func (s *Storage) BoardExists(ctx context.Context, id model.BoardID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.boards[id]
	return ok, nil
}

// Game summary operations

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries = append(s.summaries, summary)
	return nil
}

func (s *Storage) ListGameSummaries(ctx context.Context, boardID model.BoardID) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []*model.GameSummary
	for _, summary := range s.summaries {
		if summary.BoardID == boardID {
			result = append(result, summary)
		}
	}
	return result, nil
}
