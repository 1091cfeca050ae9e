package game

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/mcoot/snakeladder/internal/dependencies/clock"
	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/services/dice"
	"github.com/mcoot/snakeladder/internal/services/turn"
)

// undoSnapshot is the minimal pre-turn state needed to revert one turn
type undoSnapshot struct {
	playerIdx  int
	position   int
	turnNumber int
}

// Sequencer runs the round-robin turn loop of one game.
// It is not safe for concurrent use; callers serialize turns.
type Sequencer struct {
	game      *model.Game
	board     *model.Board
	dice      dice.Dice
	clock     clock.Clock
	logger    *slog.Logger
	observers []Observer
	last      *undoSnapshot
}

// NewSequencer creates a game on board in the not-started state
func NewSequencer(
	id model.GameID,
	board *model.Board,
	dice dice.Dice,
	clock clock.Clock,
	logger *slog.Logger,
	observers ...Observer,
) *Sequencer {
	now := clock.Now()
	return &Sequencer{
		game: &model.Game{
			ID:        id,
			BoardID:   board.ID,
			State:     model.GameStateNotStarted,
			CreatedAt: now,
			UpdatedAt: now,
		},
		board:     board,
		dice:      dice,
		clock:     clock,
		logger:    logger.With(slog.String("component", "sequencer"), slog.String("game_id", string(id))),
		observers: observers,
	}
}

// AddObserver registers an observer; observers are called in registration order
func (s *Sequencer) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters an observer previously added. It is safe to call
// from inside a callback: the notification in progress still reaches every
// observer registered when it began.
func (s *Sequencer) RemoveObserver(o Observer) {
	i := slices.IndexFunc(s.observers, func(existing Observer) bool {
		return sameObserver(existing, o)
	})
	if i < 0 {
		return
	}
	s.observers = slices.Delete(slices.Clone(s.observers), i, i+1)
}

// sameObserver compares observers without panicking on non-comparable types
func sameObserver(a, b Observer) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if ta != nil && !ta.Comparable() {
		return false
	}
	return a == b
}

// AddPlayer registers a player before the game starts
func (s *Sequencer) AddPlayer(name string) (model.Player, error) {
	switch s.game.State {
	case model.GameStateInProgress:
		return model.Player{}, model.ErrGameInProgress
	case model.GameStateWon:
		return model.Player{}, model.ErrGameAlreadyWon
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrInvalidPlayerName
	}
	// Names key game summaries and standings, so they must be unique
	for _, p := range s.game.Players {
		if strings.EqualFold(p.Name, name) {
			return model.Player{}, fmt.Errorf("%w: %q", model.ErrDuplicatePlayerName, name)
		}
	}

	player := model.Player{
		ID:       model.PlayerID(len(s.game.Players) + 1),
		Name:     name,
		Position: model.StartPosition,
	}
	s.game.Players = append(s.game.Players, player)
	s.game.UpdatedAt = s.clock.Now()
	return player, nil
}

// Start moves the game into play. At least two players are required.
func (s *Sequencer) Start() error {
	switch s.game.State {
	case model.GameStateInProgress:
		return model.ErrGameInProgress
	case model.GameStateWon:
		return model.ErrGameAlreadyWon
	}

	if len(s.game.Players) < 2 {
		return fmt.Errorf("%w: have %d, need 2", model.ErrInsufficientPlayers, len(s.game.Players))
	}

	s.game.State = model.GameStateInProgress
	s.game.UpdatedAt = s.clock.Now()

	s.logger.Info("game started",
		slog.String("board_id", string(s.board.ID)),
		slog.Int("player_count", len(s.game.Players)),
	)

	players := s.Players()
	for _, o := range s.observers {
		o.OnGameStarted(players)
	}
	return nil
}

// PlayTurn rolls for the current player and applies the result.
// Once the game is won it returns (nil, nil) without side effects.
func (s *Sequencer) PlayTurn() (*model.TurnEvent, error) {
	switch s.game.State {
	case model.GameStateNotStarted:
		return nil, model.ErrGameNotStarted
	case model.GameStateWon:
		return nil, nil
	}

	idx := s.game.CurrentIdx
	player := &s.game.Players[idx]

	for _, o := range s.observers {
		o.OnTurnStarted(*player)
	}

	roll := s.dice.Roll()
	event := turn.Resolve(s.board, player.Position, roll)
	event.TurnNumber = s.game.TurnNumber + 1
	event.PlayerID = player.ID
	event.Timestamp = s.clock.Now()

	s.last = &undoSnapshot{
		playerIdx:  idx,
		position:   player.Position,
		turnNumber: s.game.TurnNumber,
	}

	player.Position = event.To
	s.game.TurnNumber = event.TurnNumber
	s.game.UpdatedAt = event.Timestamp

	if event.Winning {
		winner := player.ID
		s.game.Winner = &winner
		s.game.State = model.GameStateWon
	} else {
		s.game.CurrentIdx = (idx + 1) % len(s.game.Players)
	}

	s.notifyTurn(*player, event)
	return &event, nil
}

func (s *Sequencer) notifyTurn(player model.Player, event model.TurnEvent) {
	for _, o := range s.observers {
		switch event.Outcome {
		case model.OutcomeOvershoot:
			o.OnOvershoot(player, event)
		case model.OutcomeSnake:
			o.OnSnakeHit(player, event)
		case model.OutcomeLadder:
			o.OnLadderHit(player, event)
		default:
			o.OnPlayerMoved(player, event)
		}
	}

	if !event.Winning {
		return
	}

	s.logger.Info("game won",
		slog.Int("player_id", int(player.ID)),
		slog.Int("turns", event.TurnNumber),
	)
	for _, o := range s.observers {
		o.OnGameWon(player, event)
	}
}

// Undo reverts the most recent turn, including a winning one.
// Only one level of undo is kept.
func (s *Sequencer) Undo() error {
	if s.last == nil {
		return model.ErrNothingToUndo
	}

	snap := s.last
	s.last = nil

	s.game.Players[snap.playerIdx].Position = snap.position
	s.game.CurrentIdx = snap.playerIdx
	s.game.TurnNumber = snap.turnNumber
	s.game.State = model.GameStateInProgress
	s.game.Winner = nil
	s.game.UpdatedAt = s.clock.Now()

	s.logger.Info("turn undone",
		slog.Int("player_id", int(s.game.Players[snap.playerIdx].ID)),
		slog.Int("position", snap.position),
	)
	return nil
}

// CanUndo reports whether a turn is available to revert
func (s *Sequencer) CanUndo() bool {
	return s.last != nil
}

// IsWon returns true once a player has reached the final square
func (s *Sequencer) IsWon() bool {
	return s.game.State == model.GameStateWon
}

// Winner returns the winning player, if any
func (s *Sequencer) Winner() (model.Player, bool) {
	if s.game.Winner == nil {
		return model.Player{}, false
	}
	return *s.game.GetPlayer(*s.game.Winner), true
}

// CurrentPlayer returns the player about to roll, or the winner once won.
// It returns the zero Player when nobody is registered.
func (s *Sequencer) CurrentPlayer() model.Player {
	p := s.game.CurrentPlayer()
	if p == nil {
		return model.Player{}
	}
	return *p
}

// Players returns a snapshot of all players in registration order
func (s *Sequencer) Players() []model.Player {
	players := make([]model.Player, len(s.game.Players))
	copy(players, s.game.Players)
	return players
}

// State returns the current phase of the game
func (s *Sequencer) State() model.GameState {
	return s.game.State
}

// Game returns a copy of the full game state
func (s *Sequencer) Game() *model.Game {
	return s.game.Clone()
}

// Board returns the board the game is played on
func (s *Sequencer) Board() *model.Board {
	return s.board
}

// Dice returns the dice the game rolls with
func (s *Sequencer) Dice() dice.Dice {
	return s.dice
}
