package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/snakeladder/internal/dependencies/random"
	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/storage"
)

const (
	// DefaultSize is the number of squares on the classic 10x10 board
	DefaultSize = 100
	// BoardIDLength is the length of generated board IDs
	BoardIDLength = 8
	// BoardIDAlphabet is the character set for generated board IDs
	BoardIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// MaxPlacementAttempts bounds the redraws when placing one random snake or ladder
	MaxPlacementAttempts = 100
	// placementMargin keeps random snake heads off the first rows and ladder
	// bottoms off the last rows
	placementMargin = 10
)

// DefaultSnakes is the canonical snake table, head -> tail
var DefaultSnakes = []model.Snake{
	{Head: 99, Tail: 78},
	{Head: 95, Tail: 75},
	{Head: 92, Tail: 88},
	{Head: 89, Tail: 68},
	{Head: 74, Tail: 53},
	{Head: 64, Tail: 60},
	{Head: 62, Tail: 19},
	{Head: 46, Tail: 25},
	{Head: 37, Tail: 3},
}

// DefaultLadders is the canonical ladder table, bottom -> top
var DefaultLadders = []model.Ladder{
	{Bottom: 1, Top: 38},
	{Bottom: 4, Top: 14},
	{Bottom: 9, Top: 31},
	{Bottom: 21, Top: 42},
	{Bottom: 28, Top: 84},
	{Bottom: 36, Top: 44},
	{Bottom: 51, Top: 67},
	{Bottom: 71, Top: 91},
	{Bottom: 80, Top: 100},
}

// RandomOptions controls random board generation
type RandomOptions struct {
	Size    int
	Snakes  int
	Ladders int
}

// DefaultRandomOptions mirrors the density of the default board
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Size:    DefaultSize,
		Snakes:  len(DefaultSnakes),
		Ladders: len(DefaultLadders),
	}
}

// Service builds boards and keeps them registered for the session
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new BoardService
func New(storage storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  rnd,
		logger:  logger.With(slog.String("component", "board-service")),
	}
}

// Default builds and registers the canonical 100-square board
func (s *Service) Default(ctx context.Context) (*model.Board, error) {
	return s.Create(ctx, DefaultSize, DefaultSnakes, DefaultLadders)
}

// Create validates and registers a board with an explicit layout
func (s *Service) Create(ctx context.Context, size int, snakes []model.Snake, ladders []model.Ladder) (*model.Board, error) {
	board, err := model.NewBoard(size, snakes, ladders)
	if err != nil {
		return nil, err
	}
	if err := s.register(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// Random places snakes and ladders at random and registers the board.
// Snake heads avoid the first placementMargin squares and ladder bottoms the
// last placementMargin squares. No square starts two jumps and no jump starts
// where another one ends.
func (s *Service) Random(ctx context.Context, opts RandomOptions) (*model.Board, error) {
	if opts.Size <= placementMargin+1 {
		return nil, model.NewConfigurationError("random board size %d must exceed %d", opts.Size, placementMargin+1)
	}
	if opts.Snakes < 0 || opts.Ladders < 0 {
		return nil, model.NewConfigurationError("snake and ladder counts must not be negative")
	}

	p := newPlacement()

	snakes := make([]model.Snake, 0, opts.Snakes)
	for i := 0; i < opts.Snakes; i++ {
		snake, ok := s.drawSnake(opts.Size, p)
		if !ok {
			return nil, model.NewConfigurationError("could not place snake %d of %d on %d squares", i+1, opts.Snakes, opts.Size)
		}
		snakes = append(snakes, snake)
	}

	ladders := make([]model.Ladder, 0, opts.Ladders)
	for i := 0; i < opts.Ladders; i++ {
		ladder, ok := s.drawLadder(opts.Size, p)
		if !ok {
			return nil, model.NewConfigurationError("could not place ladder %d of %d on %d squares", i+1, opts.Ladders, opts.Size)
		}
		ladders = append(ladders, ladder)
	}

	board, err := s.Create(ctx, opts.Size, snakes, ladders)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("random board generated",
		slog.String("board_id", string(board.ID)),
		slog.Int("snakes", len(snakes)),
		slog.Int("ladders", len(ladders)),
	)
	return board, nil
}

// Get retrieves a registered board
func (s *Service) Get(ctx context.Context, id model.BoardID) (*model.Board, error) {
	return s.storage.GetBoard(ctx, id)
}

func (s *Service) register(ctx context.Context, board *model.Board) error {
	// Generate unique board ID
	allocated := false
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		board.ID = model.BoardID(s.random.String(BoardIDLength, BoardIDAlphabet))
		exists, err := s.storage.BoardExists(ctx, board.ID)
		if err != nil {
			return err
		}
		if !exists {
			allocated = true
			break
		}
	}
	if !allocated {
		return errors.New("could not allocate a unique board id")
	}

	if err := s.storage.SaveBoard(ctx, board); err != nil {
		s.logger.Error("failed to save board",
			slog.String("board_id", string(board.ID)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("save board: %w", err)
	}

	s.logger.Info("board registered",
		slog.String("board_id", string(board.ID)),
		slog.Int("size", board.Size),
		slog.Int("snakes", len(board.Snakes())),
		slog.Int("ladders", len(board.Ladders())),
	)
	return nil
}

// placement tracks squares already used by a random layout
type placement struct {
	starts map[int]bool
	ends   map[int]bool
}

func newPlacement() *placement {
	return &placement{starts: make(map[int]bool), ends: make(map[int]bool)}
}

func (p *placement) free(start, end int) bool {
	return !p.starts[start] && !p.ends[start] && !p.starts[end]
}

func (p *placement) take(start, end int) {
	p.starts[start] = true
	p.ends[end] = true
}

func (s *Service) drawSnake(size int, p *placement) (model.Snake, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		// Head in [placementMargin, size-1] so the final square stays clear
		head := s.random.Intn(size-placementMargin) + placementMargin
		tail := s.random.Intn(head-1) + 1
		if p.free(head, tail) {
			p.take(head, tail)
			return model.Snake{Head: head, Tail: tail}, true
		}
	}
	return model.Snake{}, false
}

func (s *Service) drawLadder(size int, p *placement) (model.Ladder, bool) {
	for attempt := 0; attempt < MaxPlacementAttempts; attempt++ {
		bottom := s.random.Intn(size-placementMargin) + 1
		top := s.random.Intn(size-bottom) + bottom + 1
		if p.free(bottom, top) {
			p.take(bottom, top)
			return model.Ladder{Bottom: bottom, Top: top}, true
		}
	}
	return model.Ladder{}, false
}
