package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateNotStarted GameState = "not_started" // Registering players
	GameStateInProgress GameState = "in_progress" // Turns being played
	GameStateWon        GameState = "won"         // A player reached the final square
)

// Game is the mutable state of one round-robin race on a board
type Game struct {
	ID      GameID
	BoardID BoardID
	State   GameState

	// Players in registration order
	Players []Player

	// Turn management
	CurrentIdx int // Index into Players for the player about to roll
	TurnNumber int // Number of turns resolved so far

	Winner *PlayerID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CurrentPlayer returns the player whose turn it is, or nil if there are none
func (g *Game) CurrentPlayer() *Player {
	if len(g.Players) == 0 {
		return nil
	}
	return &g.Players[g.CurrentIdx]
}

// GetPlayer returns the player with the given ID, or nil if not found
func (g *Game) GetPlayer(id PlayerID) *Player {
	for i := range g.Players {
		if g.Players[i].ID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// Clone returns a deep copy safe to hand to callers
func (g *Game) Clone() *Game {
	c := *g
	c.Players = make([]Player, len(g.Players))
	copy(c.Players, g.Players)
	if g.Winner != nil {
		w := *g.Winner
		c.Winner = &w
	}
	return &c
}

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID             GameID
	BoardID        BoardID
	Winner         PlayerID
	WinnerName     string
	Turns          int
	FinalPositions map[string]int // Player name -> final square
	Duration       time.Duration  // From game creation to recording
	CompletedAt    time.Time
}
