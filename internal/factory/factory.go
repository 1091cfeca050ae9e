package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/snakeladder/internal/dependencies/clock"
	"github.com/mcoot/snakeladder/internal/dependencies/random"
	"github.com/mcoot/snakeladder/internal/services/board"
	"github.com/mcoot/snakeladder/internal/services/dice"
	"github.com/mcoot/snakeladder/internal/services/session"
	"github.com/mcoot/snakeladder/internal/storage"
	"github.com/mcoot/snakeladder/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	BoardService   *board.Service
	SessionService *session.Service

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Seed makes every random draw reproducible (optional)
	// If zero, the source is seeded from OS entropy
	Seed uint64
	// DiceFaces is the number of faces on the standard die (optional)
	// If zero, dice.DefaultFaces is used
	DiceFaces int
	// DiceWeights switches to a loaded die with one weight per face (optional)
	// When set, DiceFaces is ignored
	DiceWeights []int
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	faces := cfg.DiceFaces
	if faces == 0 {
		faces = dice.DefaultFaces
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	}
	logger.Debug("random source ready", slog.Uint64("seed", rnd.Seed()))

	newDice := standardDice(rnd, faces)
	if len(cfg.DiceWeights) > 0 {
		newDice = loadedDice(rnd, cfg.DiceWeights)
	}

	// Fail fast on a bad die rather than on the first game
	if _, err := newDice(); err != nil {
		return nil, err
	}

	return newWithDependencies(memory.New(), clk, rnd, newDice, logger), nil
}

// standardDice builds fair dice drawing from rnd
func standardDice(rnd random.Random, faces int) session.DiceFactory {
	return func() (dice.Dice, error) {
		return dice.NewStandard(rnd, faces)
	}
}

// loadedDice builds weighted dice drawing from rnd
func loadedDice(rnd random.Random, weights []int) session.DiceFactory {
	return func() (dice.Dice, error) {
		return dice.NewLoaded(rnd, weights)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	newDice session.DiceFactory,
	logger *slog.Logger,
) *App {
	boardService := board.New(store, rnd, logger)
	sessionService := session.NewService(store, boardService, newDice, clk, rnd, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		BoardService:   boardService,
		SessionService: sessionService,
		Logger:         logger,
	}
}
