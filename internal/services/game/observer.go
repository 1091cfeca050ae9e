package game

import (
	"log/slog"

	"github.com/mcoot/snakeladder/internal/model"
)

// Observer receives synchronous callbacks from a Sequencer.
//
// Per turn the order is OnTurnStarted, then exactly one of OnPlayerMoved,
// OnOvershoot, OnSnakeHit or OnLadderHit, then OnGameWon if the turn won.
// Player values carry the position after the turn was applied.
type Observer interface {
	OnGameStarted(players []model.Player)
	OnTurnStarted(player model.Player)
	OnPlayerMoved(player model.Player, event model.TurnEvent)
	OnOvershoot(player model.Player, event model.TurnEvent)
	OnSnakeHit(player model.Player, event model.TurnEvent)
	OnLadderHit(player model.Player, event model.TurnEvent)
	OnGameWon(winner model.Player, event model.TurnEvent)
}

// NopObserver ignores every callback; embed it to implement only some of them
type NopObserver struct{}

func (NopObserver) OnGameStarted([]model.Player)                {}
func (NopObserver) OnTurnStarted(model.Player)                  {}
func (NopObserver) OnPlayerMoved(model.Player, model.TurnEvent) {}
func (NopObserver) OnOvershoot(model.Player, model.TurnEvent)   {}
func (NopObserver) OnSnakeHit(model.Player, model.TurnEvent)    {}
func (NopObserver) OnLadderHit(model.Player, model.TurnEvent)   {}
func (NopObserver) OnGameWon(model.Player, model.TurnEvent)     {}

var _ Observer = NopObserver{}

// LoggingObserver writes every game event to a structured logger
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a LoggingObserver
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger.With(slog.String("component", "game-events"))}
}

var _ Observer = (*LoggingObserver)(nil)

func (o *LoggingObserver) OnGameStarted(players []model.Player) {
	o.logger.Info("game started", slog.Int("player_count", len(players)))
}

func (o *LoggingObserver) OnTurnStarted(player model.Player) {
	o.logger.Debug("turn started",
		slog.Int("player_id", int(player.ID)),
		slog.Int("position", player.Position),
	)
}

func (o *LoggingObserver) OnPlayerMoved(player model.Player, event model.TurnEvent) {
	o.logTurn("player moved", player, event)
}

func (o *LoggingObserver) OnOvershoot(player model.Player, event model.TurnEvent) {
	o.logTurn("roll wasted", player, event)
}

func (o *LoggingObserver) OnSnakeHit(player model.Player, event model.TurnEvent) {
	o.logTurn("snake hit", player, event)
}

func (o *LoggingObserver) OnLadderHit(player model.Player, event model.TurnEvent) {
	o.logTurn("ladder climbed", player, event)
}

func (o *LoggingObserver) OnGameWon(winner model.Player, event model.TurnEvent) {
	o.logger.Info("game won",
		slog.Int("player_id", int(winner.ID)),
		slog.String("player_name", winner.Name),
		slog.Int("turn", event.TurnNumber),
	)
}

func (o *LoggingObserver) logTurn(msg string, player model.Player, event model.TurnEvent) {
	o.logger.Debug(msg,
		slog.Int("turn", event.TurnNumber),
		slog.Int("player_id", int(player.ID)),
		slog.Int("roll", event.Roll),
		slog.Int("from", event.From),
		slog.Int("to", event.To),
		slog.String("outcome", string(event.Outcome)),
	)
}
