package model

import "fmt"

// PlayerID identifies a player within a game, assigned in registration order
type PlayerID int

// StartPosition is the off-board square every player begins on
const StartPosition = 0

// Player represents a game participant
type Player struct {
	ID       PlayerID
	Name     string
	Position int
}

func (p Player) String() string {
	return fmt.Sprintf("%s (#%d) at %d", p.Name, p.ID, p.Position)
}
