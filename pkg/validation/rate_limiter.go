package validation

import (
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket. Buckets refill continuously over
// the window and idle clients are dropped to bound memory.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	clients     map[string]*bucket
	mu          sync.Mutex
	cleanupTick *time.Ticker
	done        chan struct{}
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a rate limiter allowing maxRequests per window per
// client.
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		clients:     make(map[string]*bucket),
		done:        make(chan struct{}),
		cleanupTick: time.NewTicker(window),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow reports whether the client may send another message now.
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.clients[clientID]
	if !ok {
		b = &bucket{tokens: float64(rl.maxRequests), lastRefill: now}
		rl.clients[clientID] = b
	}

	refill := now.Sub(b.lastRefill).Seconds() / rl.window.Seconds() * float64(rl.maxRequests)
	b.tokens += refill
	if b.tokens > float64(rl.maxRequests) {
		b.tokens = float64(rl.maxRequests)
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanupLoop() {
	for {
		select {
		case <-rl.cleanupTick.C:
			cutoff := time.Now().Add(-2 * rl.window)
			rl.mu.Lock()
			for id, b := range rl.clients {
				if b.lastRefill.Before(cutoff) {
					delete(rl.clients, id)
				}
			}
			rl.mu.Unlock()
		case <-rl.done:
			return
		}
	}
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() {
	close(rl.done)
	rl.cleanupTick.Stop()
}
