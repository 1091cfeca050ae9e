// Package turn resolves a single dice roll against a board.
package turn

import "github.com/mcoot/snakeladder/internal/model"

// Resolve computes where a player on position ends up after rolling roll.
//
// Rules apply in a fixed order: a roll past the final square is wasted and
// the player stays put; otherwise a snake head on the landing square is
// checked before a ladder bottom. The winning check runs on the final square,
// so a ladder can finish the game. Only the game-specific fields of the
// returned event are set; the caller stamps player, turn and time.
func Resolve(board *model.Board, position, roll int) model.TurnEvent {
	event := model.TurnEvent{
		Roll: roll,
		From: position,
	}

	tentative := position + roll
	if tentative > board.Size {
		event.Landed = position
		event.To = position
		event.Outcome = model.OutcomeOvershoot
		return event
	}

	event.Landed = tentative

	if tail, ok := board.SnakeTail(tentative); ok {
		event.To = tail
		event.Outcome = model.OutcomeSnake
		event.Snake = &model.Snake{Head: tentative, Tail: tail}
	} else if top, ok := board.LadderTop(tentative); ok {
		event.To = top
		event.Outcome = model.OutcomeLadder
		event.Ladder = &model.Ladder{Bottom: tentative, Top: top}
	} else {
		event.To = tentative
		event.Outcome = model.OutcomeMoved
	}

	event.Winning = board.IsWinning(event.To)
	return event
}
