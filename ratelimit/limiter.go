package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Config configures the limiter.
type Config struct {
	// Limit is the number of attempts allowed per key per window.
	// Default: 5
	Limit int

	// Window is the sliding window length.
	// Default: 60 seconds
	Window time.Duration

	// Now overrides the clock. Used in tests.
	// Default: time.Now
	Now func() time.Time
}

// LimitedError reports a rejected attempt.
type LimitedError struct {
	// Key is the identity the limit applies to.
	Key string

	// RetryAfter is how long until the oldest counted attempt leaves
	// the window and one slot frees up.
	RetryAfter time.Duration
}

// Error returns the error message.
func (e *LimitedError) Error() string {
	return fmt.Sprintf("ratelimit: too many attempts: key=%q retry_after=%s", e.Key, e.RetryAfter)
}

// Is reports whether this error matches the target.
func (e *LimitedError) Is(target error) bool {
	return target == ErrRateLimited
}

// Limiter is a per-key sliding window attempt limiter.
// Safe for concurrent use. Single process only.
type Limiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	attempts map[string][]time.Time
}

// NewLimiter creates a sliding window limiter.
func NewLimiter(config Config) *Limiter {
	if config.Limit <= 0 {
		config.Limit = 5
	}
	if config.Window <= 0 {
		config.Window = 60 * time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return &Limiter{
		limit:    config.Limit,
		window:   config.Window,
		now:      config.Now,
		attempts: make(map[string][]time.Time),
	}
}

// Allow records an attempt for the key if the in-window count is
// under the limit. At the cap it returns a *LimitedError and records
// nothing, so rejected attempts never extend the lockout.
func (l *Limiter) Allow(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.pruneLocked(key, now)

	if len(kept) >= l.limit {
		oldest := kept[0]
		return &LimitedError{
			Key:        key,
			RetryAfter: oldest.Add(l.window).Sub(now),
		}
	}

	l.attempts[key] = append(kept, now)
	return nil
}

// Attempts returns the number of in-window attempts recorded for the
// key.
func (l *Limiter) Attempts(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pruneLocked(key, l.now()))
}

// Reset forgets all attempts for the key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	delete(l.attempts, key)
	l.mu.Unlock()
}

// pruneLocked drops timestamps that have left the window. An attempt
// at time t is in the window while now-t < window, so a slot frees
// exactly one window after the attempt. Keys with no remaining
// attempts are removed from the map.
func (l *Limiter) pruneLocked(key string, now time.Time) []time.Time {
	attempts := l.attempts[key]
	kept := attempts[:0]
	for _, t := range attempts {
		if now.Sub(t) < l.window {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, key)
		return nil
	}
	l.attempts[key] = kept
	return kept
}
