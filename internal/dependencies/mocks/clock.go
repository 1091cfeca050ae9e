package mocks

import (
	"time"

	"github.com/mcoot/snakeladder/internal/dependencies/clock"
)

// MockClock is a manually driven Clock. When Step is set, every call to Now
// moves the clock forward by Step after reading it, so consecutive turns get
// distinct timestamps.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock frozen at the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked time, then applies Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Since measures against the mocked time without applying Step
func (c *MockClock) Since(t time.Time) time.Duration {
	return c.CurrentTime.Sub(t)
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
