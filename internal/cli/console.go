package cli

import (
	"fmt"
	"strings"

	"github.com/mcoot/snakeladder/internal/model"
	"github.com/mcoot/snakeladder/internal/services/game"
)

// ConsoleObserver prints game events as they happen
type ConsoleObserver struct {
	game.NopObserver
	out       *Output
	boardSize int
}

// NewConsoleObserver creates a ConsoleObserver for a board of the given size
func NewConsoleObserver(out *Output, boardSize int) *ConsoleObserver {
	return &ConsoleObserver{out: out, boardSize: boardSize}
}

var _ game.Observer = (*ConsoleObserver)(nil)

func (c *ConsoleObserver) OnGameStarted(players []model.Player) {
	if c.out.IsJSON() {
		return
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name
	}
	c.out.PrintMessage(fmt.Sprintf("Game started with %d players: %s", len(players), strings.Join(names, ", ")))
}

func (c *ConsoleObserver) OnPlayerMoved(player model.Player, event model.TurnEvent) {
	c.out.Print(newTurnReport(player, event, c.boardSize))
}

func (c *ConsoleObserver) OnOvershoot(player model.Player, event model.TurnEvent) {
	c.out.Print(newTurnReport(player, event, c.boardSize))
}

func (c *ConsoleObserver) OnSnakeHit(player model.Player, event model.TurnEvent) {
	c.out.Print(newTurnReport(player, event, c.boardSize))
}

func (c *ConsoleObserver) OnLadderHit(player model.Player, event model.TurnEvent) {
	c.out.Print(newTurnReport(player, event, c.boardSize))
}
