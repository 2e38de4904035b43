package auth

import (
	"sync"
	"time"
)

// revocations holds logged-out session IDs until their tokens expire.
// Entries are never evicted early; a token past its expiry fails
// verification on its own, so expired entries are swept on insert.
type revocations struct {
	mu        sync.Mutex
	until     map[string]time.Time // zero means no expiry
	now       func() time.Time
	lastSweep time.Time
	every     time.Duration
}

func newRevocations(now func() time.Time, sweepEvery time.Duration) *revocations {
	return &revocations{
		until:     make(map[string]time.Time),
		now:       now,
		lastSweep: now(),
		every:     sweepEvery,
	}
}

func (r *revocations) add(id string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.every {
		for k, t := range r.until {
			if !t.IsZero() && !now.Before(t) {
				delete(r.until, k)
			}
		}
		r.lastSweep = now
	}
	r.until[id] = until
}

func (r *revocations) has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.until[id]
	return ok && (t.IsZero() || r.now().Before(t))
}

func (r *revocations) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.until)
}
