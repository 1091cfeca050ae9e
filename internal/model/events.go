package model

import "time"

// TurnOutcome tags how a resolved turn ended
type TurnOutcome string

const (
	OutcomeMoved     TurnOutcome = "moved"
	OutcomeOvershoot TurnOutcome = "overshoot" // Roll wasted, player stays put
	OutcomeSnake     TurnOutcome = "snake"
	OutcomeLadder    TurnOutcome = "ladder"
)

// TurnEvent is the immutable record of one resolved turn
type TurnEvent struct {
	TurnNumber int
	PlayerID   PlayerID
	Roll       int
	From       int // Position before the roll
	Landed     int // Square reached by the roll, or From on overshoot
	To         int // Final position after any snake or ladder
	Outcome    TurnOutcome
	Snake      *Snake  // Set when Outcome is snake
	Ladder     *Ladder // Set when Outcome is ladder
	Winning    bool
	Timestamp  time.Time
}
