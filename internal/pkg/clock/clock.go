// Package clock abstracts the wall clock so deadline and snapshot logic can
// be tested at a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock. The composed application always
// runs on this one.
type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock stands still until told otherwise. Tests advance it with Set or
// Add to cross expiry boundaries deterministically.
type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
