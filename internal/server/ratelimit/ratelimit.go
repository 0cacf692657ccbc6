// Package ratelimit provides per-client request rate limiting using a token
// bucket.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single client. Tokens refill at a steady
// rate up to the burst capacity.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

func (b *bucket) refill(now time.Time) {
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens = min(float64(b.capacity), b.tokens+elapsed*b.refillRate)
	b.lastRefill = now
}

// Status describes the limiter state for a client after a check.
type Status struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter tracks a token bucket per client ID. Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	buckets map[string]*bucket
}

// NewLimiter creates a limiter with the given configuration.
func NewLimiter(cfg Config) *Limiter {
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
	}
}

// Allow consumes a token for the client if one is available. It returns
// whether the request is allowed plus the current status for response
// headers.
func (l *Limiter) Allow(clientID string) (bool, Status) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{
			capacity:   l.cfg.Burst,
			refillRate: float64(l.cfg.RequestsPerMinute) / 60.0,
			tokens:     float64(l.cfg.Burst),
			lastRefill: now,
		}
		l.buckets[clientID] = b
	}
	b.refill(now)
	b.lastSeen = now

	l.pruneLocked(now)

	allowed := false
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	reset := now
	if b.tokens < float64(b.capacity) && b.refillRate > 0 {
		secondsToFull := (float64(b.capacity) - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsToFull * float64(time.Second)))
	}

	return allowed, Status{
		Limit:     l.cfg.Burst,
		Remaining: int(b.tokens),
		Reset:     reset,
	}
}

// pruneLocked drops buckets idle longer than the stale window so the map
// does not grow without bound. Caller holds the mutex.
func (l *Limiter) pruneLocked(now time.Time) {
	if len(l.buckets) < l.cfg.MaxClients {
		return
	}
	for id, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.cfg.StaleAfter {
			delete(l.buckets, id)
		}
	}
}
