// Package ratelimit bounds login attempts per client inside a fixed time
// window. Counters live behind a Store interface so the in-memory default
// can be swapped for a shared backing store without touching call sites.
package ratelimit

import (
	"sync"
	"time"
)

// Store persists per-client attempt windows. Implementations must be safe
// for concurrent use; updates to different keys must not contend with each
// other.
type Store interface {
	// Incr records one attempt for key and returns the attempt count within
	// the current window. A window expires lazily: when now is at least
	// window past the stored window start, the counter restarts at 1. No
	// background sweeping.
	Incr(key string, now time.Time, window time.Duration) int
}

// MemoryStore is the default in-process Store. Each key owns its own entry
// and lock, so clients never contend with each other. State does not survive
// restarts, which is acceptable for attempt counters.
type MemoryStore struct {
	entries sync.Map
}

type windowEntry struct {
	mu       sync.Mutex
	start    time.Time
	attempts int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Incr(key string, now time.Time, window time.Duration) int {
	v, _ := s.entries.LoadOrStore(key, &windowEntry{})
	e := v.(*windowEntry)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.start.IsZero() || now.Sub(e.start) >= window {
		e.start = now
		e.attempts = 0
	}
	e.attempts++
	return e.attempts
}

// Limiter throttles attempts per client key using a fixed window.
type Limiter struct {
	store  Store
	window time.Duration
	max    int

	now func() time.Time
}

// NewLimiter creates a Limiter allowing max attempts per window for each key.
func NewLimiter(store Store, window time.Duration, max int) *Limiter {
	return &Limiter{
		store:  store,
		window: window,
		max:    max,
		now:    time.Now,
	}
}

// Check records one attempt for key and reports whether it is allowed.
// The call must happen before any credential verification so denied attempts
// never reach the password hash comparison.
func (l *Limiter) Check(key string) bool {
	return l.store.Incr(key, l.now(), l.window) <= l.max
}
