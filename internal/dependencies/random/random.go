package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Random is the source behind dice rolls, random board layouts and IDs
type Random interface {
	// Intn returns a value in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String draws length characters from alphabet
	String(length int, alphabet string) string
}

// Source implements Random on a PCG generator
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a Source seeded from the operating system's entropy
func New() *Source {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return NewSeeded(binary.LittleEndian.Uint64(b[:]))
}

// NewSeeded creates a Source that replays the same sequence for the same seed
func NewSeeded(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the seed the source was created with
func (s *Source) Seed() uint64 {
	return s.seed
}

func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

func (s *Source) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[s.Intn(len(alphabet))]
	}
	return string(out)
}
