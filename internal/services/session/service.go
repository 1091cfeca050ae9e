package session

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mcoot/snakeladder/internal/dependencies/clock"
	"github.com/mcoot/snakeladder/internal/dependencies/random"
	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/services/board"
	"github.com/mcoot/snakeladder/internal/services/dice"
	"github.com/mcoot/snakeladder/internal/services/game"
	"github.com/mcoot/snakeladder/internal/storage"
)

const (
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
	// GameIDAlphabet is the character set for generated game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// DefaultMaxTurns caps a simulated game
	DefaultMaxTurns = 10000
)

// Board kinds accepted in a BoardSpec
const (
	BoardKindDefault = "default"
	BoardKindRandom  = "random"
)

// DiceFactory builds a fresh die for each game
type DiceFactory func() (dice.Dice, error)

// BoardSpec selects the board a session plays on. A non-empty ID reuses a
// registered board; otherwise Kind picks the default or a random layout.
type BoardSpec struct {
	ID     model.BoardID
	Kind   string
	Random board.RandomOptions
}

// Standing is one player's record across the games of a session
type Standing struct {
	Name   string
	Wins   int
	Played int
}

// Service creates sessions: a fixed board plus the history of games played on it
type Service struct {
	storage      storage.Storage
	boardService *board.Service
	newDice      DiceFactory
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewService creates a new session Service
func NewService(
	store storage.Storage,
	boardService *board.Service,
	newDice DiceFactory,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage:      store,
		boardService: boardService,
		newDice:      newDice,
		clock:        clk,
		random:       rnd,
		logger:       logger.With(slog.String("component", "session-service")),
	}
}

// NewSession resolves the board once; every game of the session reuses it
func (s *Service) NewSession(ctx context.Context, spec BoardSpec) (*Session, error) {
	var (
		b   *model.Board
		err error
	)

	switch {
	case spec.ID != "":
		b, err = s.boardService.Get(ctx, spec.ID)
	case spec.Kind == "" || spec.Kind == BoardKindDefault:
		b, err = s.boardService.Default(ctx)
	case spec.Kind == BoardKindRandom:
		b, err = s.boardService.Random(ctx, spec.Random)
	default:
		return nil, fmt.Errorf("unknown board kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	return &Session{service: s, board: b}, nil
}

// Session is a sequence of games on one board
type Session struct {
	service *Service
	board   *model.Board
}

// Board returns the board every game of the session is played on
func (ss *Session) Board() *model.Board {
	return ss.board
}

// NewGame registers the named players on a fresh game and starts it
func (ss *Session) NewGame(ctx context.Context, names []string, observers ...game.Observer) (*game.Sequencer, error) {
	s := ss.service

	d, err := s.newDice()
	if err != nil {
		return nil, err
	}

	gameID := model.GameID(s.random.String(GameIDLength, GameIDAlphabet))
	seq := game.NewSequencer(gameID, ss.board, d, s.clock, s.logger, observers...)

	for _, name := range names {
		if _, err := seq.AddPlayer(name); err != nil {
			return nil, err
		}
	}

	if err := seq.Start(); err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.String("board_id", string(ss.board.ID)),
		slog.Int("player_count", len(names)),
	)
	return seq, nil
}

// Record stores the summary of a won game
func (ss *Session) Record(ctx context.Context, seq *game.Sequencer) (*model.GameSummary, error) {
	winner, ok := seq.Winner()
	if !ok {
		return nil, model.ErrGameInProgress
	}

	g := seq.Game()
	summary := &model.GameSummary{
		ID:             g.ID,
		BoardID:        g.BoardID,
		Winner:         winner.ID,
		WinnerName:     winner.Name,
		Turns:          g.TurnNumber,
		FinalPositions: make(map[string]int, len(g.Players)),
		Duration:       ss.service.clock.Since(g.CreatedAt),
		CompletedAt:    ss.service.clock.Now(),
	}
	for _, p := range g.Players {
		summary.FinalPositions[p.Name] = p.Position
	}

	if err := ss.service.storage.SaveGameSummary(ctx, summary); err != nil {
		return nil, fmt.Errorf("save game summary: %w", err)
	}

	ss.service.logger.Info("game recorded",
		slog.String("game_id", string(summary.ID)),
		slog.String("winner", summary.WinnerName),
		slog.Int("turns", summary.Turns),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// Simulate plays a game to completion without interaction and records it.
// A game still running after maxTurns turns fails with ErrTurnLimitReached.
func (ss *Session) Simulate(ctx context.Context, names []string, maxTurns int, observers ...game.Observer) (*model.GameSummary, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	seq, err := ss.NewGame(ctx, names, observers...)
	if err != nil {
		return nil, err
	}

	for turns := 0; !seq.IsWon(); turns++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if turns >= maxTurns {
			return nil, fmt.Errorf("%w: %d turns", model.ErrTurnLimitReached, maxTurns)
		}
		if _, err := seq.PlayTurn(); err != nil {
			return nil, err
		}
	}

	return ss.Record(ctx, seq)
}

// History returns the recorded games of this session in completion order
func (ss *Session) History(ctx context.Context) ([]*model.GameSummary, error) {
	return ss.service.storage.ListGameSummaries(ctx, ss.board.ID)
}

// Standings tallies wins per player name, most wins first
func (ss *Session) Standings(ctx context.Context) ([]Standing, error) {
	history, err := ss.History(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*Standing)
	for _, summary := range history {
		for name := range summary.FinalPositions {
			st, ok := byName[name]
			if !ok {
				st = &Standing{Name: name}
				byName[name] = st
			}
			st.Played++
		}
		if st, ok := byName[summary.WinnerName]; ok {
			st.Wins++
		}
	}

	standings := make([]Standing, 0, len(byName))
	for _, st := range byName {
		standings = append(standings, *st)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Name < standings[j].Name
	})
	return standings, nil
}
