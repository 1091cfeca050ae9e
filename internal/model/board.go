package model

import "sort"

// BoardID identifies a board registered for a session
type BoardID string

// Snake demotes a player landing on Head down to Tail
type Snake struct {
	Head int
	Tail int
}

// Ladder promotes a player landing on Bottom up to Top
type Ladder struct {
	Bottom int
	Top    int
}

// Board is the static layout of a game: its size and special squares.
// Square Size is the winning square; position 0 is off-board.
type Board struct {
	ID   BoardID
	Size int

	snakes  map[int]int // head -> tail
	ladders map[int]int // bottom -> top
}

// NewBoard validates the layout and builds an immutable Board
func NewBoard(size int, snakes []Snake, ladders []Ladder) (*Board, error) {
	if size < 1 {
		return nil, NewConfigurationError("board size %d must be positive", size)
	}

	b := &Board{
		Size:    size,
		snakes:  make(map[int]int, len(snakes)),
		ladders: make(map[int]int, len(ladders)),
	}

	for _, s := range snakes {
		if !b.onBoard(s.Head) || !b.onBoard(s.Tail) {
			return nil, NewConfigurationError("snake %d->%d must lie within [1, %d]", s.Head, s.Tail, size)
		}
		if s.Head <= s.Tail {
			return nil, NewConfigurationError("snake head %d must be above its tail %d", s.Head, s.Tail)
		}
		if _, dup := b.snakes[s.Head]; dup {
			return nil, NewConfigurationError("square %d has more than one snake", s.Head)
		}
		b.snakes[s.Head] = s.Tail
	}

	for _, l := range ladders {
		if !b.onBoard(l.Bottom) || !b.onBoard(l.Top) {
			return nil, NewConfigurationError("ladder %d->%d must lie within [1, %d]", l.Bottom, l.Top, size)
		}
		if l.Bottom >= l.Top {
			return nil, NewConfigurationError("ladder bottom %d must be below its top %d", l.Bottom, l.Top)
		}
		if _, dup := b.ladders[l.Bottom]; dup {
			return nil, NewConfigurationError("square %d has more than one ladder", l.Bottom)
		}
		if _, clash := b.snakes[l.Bottom]; clash {
			return nil, NewConfigurationError("square %d is both a snake head and a ladder bottom", l.Bottom)
		}
		b.ladders[l.Bottom] = l.Top
	}

	return b, nil
}

func (b *Board) onBoard(pos int) bool {
	return pos >= 1 && pos <= b.Size
}

// IsValidPosition returns true if pos is off-board (0) or a square on the board
func (b *Board) IsValidPosition(pos int) bool {
	return pos >= 0 && pos <= b.Size
}

// IsWinning returns true if pos is the final square
func (b *Board) IsWinning(pos int) bool {
	return pos == b.Size
}

// HasSnake returns true if a snake head sits on pos
func (b *Board) HasSnake(pos int) bool {
	_, ok := b.snakes[pos]
	return ok
}

// HasLadder returns true if a ladder bottom sits on pos
func (b *Board) HasLadder(pos int) bool {
	_, ok := b.ladders[pos]
	return ok
}

// SnakeTail returns where the snake at pos leads, if there is one
func (b *Board) SnakeTail(pos int) (int, bool) {
	tail, ok := b.snakes[pos]
	return tail, ok
}

// LadderTop returns where the ladder at pos leads, if there is one
func (b *Board) LadderTop(pos int) (int, bool) {
	top, ok := b.ladders[pos]
	return top, ok
}

// Snakes returns all snakes ordered by head
func (b *Board) Snakes() []Snake {
	result := make([]Snake, 0, len(b.snakes))
	for head, tail := range b.snakes {
		result = append(result, Snake{Head: head, Tail: tail})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Head < result[j].Head })
	return result
}

// Ladders returns all ladders ordered by bottom
func (b *Board) Ladders() []Ladder {
	result := make([]Ladder, 0, len(b.ladders))
	for bottom, top := range b.ladders {
		result = append(result, Ladder{Bottom: bottom, Top: top})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Bottom < result[j].Bottom })
	return result
}

// IsStartSquare returns true if pos begins a snake or a ladder
func (b *Board) IsStartSquare(pos int) bool {
	return b.HasSnake(pos) || b.HasLadder(pos)
}
