package mocks

import (
	"time"

	"github.com/mcoot/hearts/internal/dependencies/clock"
)

// MockClock is a hand-driven clock for event timestamps
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves time on, e.g. to the length of a hand between taps
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
