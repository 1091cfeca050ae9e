// Package dice provides the roll strategies a game can be played with.
// Every implementation returns values in [1, Faces()].
package dice

import (
	"fmt"

	"github.com/mcoot/snakeladder/internal/dependencies/random"
	"github.com/mcoot/snakeladder/internal/model"
)

// DefaultFaces is the number of faces on a standard die
const DefaultFaces = 6

// Dice produces one roll per call
type Dice interface {
	Roll() int
	Faces() int
}

// Standard is a fair die with uniformly distributed faces
type Standard struct {
	random random.Random
	faces  int
}

// NewStandard creates a fair die with the given number of faces
func NewStandard(rnd random.Random, faces int) (*Standard, error) {
	if faces < 1 {
		return nil, fmt.Errorf("%w: %d faces", model.ErrInvalidDice, faces)
	}
	return &Standard{random: rnd, faces: faces}, nil
}

// Roll returns a value in [1, faces]
func (d *Standard) Roll() int {
	return d.random.Intn(d.faces) + 1
}

// Faces returns the highest possible roll
func (d *Standard) Faces() int {
	return d.faces
}

// Loaded is a weighted die. Face i+1 comes up with probability weights[i]/sum(weights).
type Loaded struct {
	random  random.Random
	weights []int
	total   int
}

// NewLoaded creates a weighted die with one weight per face
func NewLoaded(rnd random.Random, weights []int) (*Loaded, error) {
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: face %d has negative weight %d", model.ErrInvalidDice, i+1, w)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: weights must not all be zero", model.ErrInvalidDice)
	}

	w := make([]int, len(weights))
	copy(w, weights)
	return &Loaded{random: rnd, weights: w, total: total}, nil
}

// Roll picks a face according to its weight
func (d *Loaded) Roll() int {
	n := d.random.Intn(d.total)
	for i, w := range d.weights {
		if n < w {
			return i + 1
		}
		n -= w
	}
	// Unreachable while Intn honours its [0, n) contract
	return len(d.weights)
}

// Faces returns the highest possible roll
func (d *Loaded) Faces() int {
	return len(d.weights)
}

// Sequence replays a fixed list of rolls, wrapping around when exhausted
type Sequence struct {
	faces int
	rolls []int
	next  int
}

// NewSequence creates a deterministic die. Every roll must be within [1, faces].
func NewSequence(faces int, rolls ...int) (*Sequence, error) {
	if faces < 1 {
		return nil, fmt.Errorf("%w: %d faces", model.ErrInvalidDice, faces)
	}
	if len(rolls) == 0 {
		return nil, fmt.Errorf("%w: sequence is empty", model.ErrInvalidDice)
	}
	for _, r := range rolls {
		if r < 1 || r > faces {
			return nil, fmt.Errorf("%w: roll %d outside [1, %d]", model.ErrInvalidDice, r, faces)
		}
	}

	seq := make([]int, len(rolls))
	copy(seq, rolls)
	return &Sequence{faces: faces, rolls: seq}, nil
}

// Roll returns the next value in the sequence
func (d *Sequence) Roll() int {
	r := d.rolls[d.next]
	d.next = (d.next + 1) % len(d.rolls)
	return r
}

// Faces returns the highest possible roll
func (d *Sequence) Faces() int {
	return d.faces
}

// Func adapts a plain function to the Dice interface. The caller is
// responsible for keeping its results within [1, faces].
type Func struct {
	MaxFace int
	RollFn  func() int
}

// Roll calls the wrapped function
func (f Func) Roll() int {
	return f.RollFn()
}

// Faces returns the declared highest roll
func (f Func) Faces() int {
	return f.MaxFace
}

var (
	_ Dice = (*Standard)(nil)
	_ Dice = (*Loaded)(nil)
	_ Dice = (*Sequence)(nil)
	_ Dice = Func{}
)
