package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant. Services take a Clock instead of
// calling time.Now directly so lifecycle transitions are deterministic
// under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

// Stub is a manually controlled Clock for tests.
type Stub struct {
	mu  sync.Mutex
	now time.Time
}

func NewStub(now time.Time) *Stub {
	return &Stub{now: now}
}

func (s *Stub) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *Stub) Set(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Stub) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}
