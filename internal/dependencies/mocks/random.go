package mocks

import (
	"github.com/mcoot/snakeladder/internal/dependencies/random"
)

// queue hands out values in order and the zero value once drained
type queue[T any] struct {
	values []T
	next   int
}

func (q *queue[T]) push(values ...T) {
	q.values = append(q.values, values...)
}

func (q *queue[T]) pop() T {
	var zero T
	if q.next >= len(q.values) {
		return zero
	}
	v := q.values[q.next]
	q.next++
	return v
}

func (q *queue[T]) remaining() int {
	return len(q.values) - q.next
}

// MockRandom replays queued values. A queued Intn value of r-1 makes a
// standard die roll r.
type MockRandom struct {
	// IntnArgs records the bound passed to every Intn call
	IntnArgs []int

	ints    queue[int]
	strings queue[string]
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued int, or 0 once the queue is empty
func (r *MockRandom) Intn(n int) int {
	r.IntnArgs = append(r.IntnArgs, n)
	return r.ints.pop()
}

// String returns the next queued string, or "" once the queue is empty
func (r *MockRandom) String(length int, alphabet string) string {
	return r.strings.pop()
}

// QueueIntn appends values for Intn
func (r *MockRandom) QueueIntn(values ...int) {
	r.ints.push(values...)
}

// QueueString appends values for String
func (r *MockRandom) QueueString(values ...string) {
	r.strings.push(values...)
}

// Remaining returns how many queued Intn values are unconsumed
func (r *MockRandom) Remaining() int {
	return r.ints.remaining()
}
