package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Until a time is set it follows the wall clock.
type Time struct {
	mu      sync.RWMutex
	current time.Time
}

func NewTime() *Time {
	return &Time{}
}

// SetCurrentTime pins the clock to currentTime.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime.UTC()
}

// Reset makes the clock follow the wall clock again.
func (t *Time) Reset() {
	t.SetCurrentTime(time.Time{})
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.current.IsZero() {
		return time.Now().UTC()
	}
	return t.current
}
