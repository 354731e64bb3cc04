package clock

import (
	"sync"
	"time"
)

// Clock stamps history entries, price breakdowns and discount windows.
type Clock interface {
	Now() time.Time
}

// pgPrecision is timestamptz resolution. Truncating up front keeps an
// in-memory timestamp equal to the same value read back from Postgres.
const pgPrecision = time.Microsecond

type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now().Truncate(pgPrecision)
}

// MockClock is safe for concurrent use; use-case tests share it across goroutines.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t.Truncate(pgPrecision)}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t.Truncate(pgPrecision)
	c.mu.Unlock()
}

// Add advances the clock, e.g. past a discount rule's valid_until.
func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d).Truncate(pgPrecision)
	c.mu.Unlock()
}
