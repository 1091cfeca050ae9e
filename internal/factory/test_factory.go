package factory

import (
	"time"

	"github.com/mcoot/snakeladder/internal/dependencies/mocks"
	"github.com/mcoot/snakeladder/internal/services/dice"
	"github.com/mcoot/snakeladder/internal/storage/memory"
	"github.com/mcoot/snakeladder/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Dice are standard six-sided dice drawing from MockRandom.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, standardDice(mockRandom, dice.DefaultFaces), testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueRolls queues die results (1-based) for the standard die
func (t *TestApp) QueueRolls(rolls ...int) {
	for _, r := range rolls {
		t.MockRandom.QueueIntn(r - 1)
	}
}
