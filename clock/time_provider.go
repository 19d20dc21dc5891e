// Package clock provides time sources and the cooldown timers that gate how
// often each actor category may act.
package clock

import (
	"sync"
	"time"
)

// TimeProvider is the time source consulted by the simulation
type TimeProvider interface {
	Now() time.Time
}

// Real provides the system time with monotonic clock readings
type Real struct{}

// New returns the real time provider
func New() TimeProvider {
	return Real{}
}

// Now returns the current time
func (Real) Now() time.Time {
	return time.Now()
}

// Mock provides a controllable time source for testing
type Mock struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMock creates a mock time provider starting at the given time
func NewMock(start time.Time) *Mock {
	return &Mock{currentTime: start}
}

// Now returns the current mocked time
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Set sets the current time
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the current time forward and returns the new value
func (m *Mock) Advance(d time.Duration) time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
	return m.currentTime
}
