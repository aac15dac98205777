package ratelimit

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

// Limiter throttles repeated input per key (e.g. one bucket per navigation key).
type Limiter interface {
	Allow(key string) bool
}

// InMemoryLimiter keeps one token bucket per key.
type InMemoryLimiter struct {
	buckets map[string]*rate.Limiter
	mu      sync.Mutex
	clock   clockwork.Clock
	r       rate.Limit
	b       int
}

// NewInMemoryLimiter creates a new rate limiter.
// Example: NewInMemoryLimiter(clock, 4, time.Second, 2) allows 4 actions a second with a burst of 2.
func NewInMemoryLimiter(clock clockwork.Clock, requests int, per time.Duration, burst int) *InMemoryLimiter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if requests <= 0 {
		requests = 1
	}
	return &InMemoryLimiter{
		buckets: make(map[string]*rate.Limiter),
		clock:   clock,
		r:       rate.Every(per / time.Duration(requests)),
		b:       burst,
	}
}

// Allow reports whether an action under key may happen now.
func (l *InMemoryLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.buckets[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.buckets[key] = limiter
	}

	return limiter.AllowN(l.clock.Now(), 1)
}

var _ Limiter = (*InMemoryLimiter)(nil)
