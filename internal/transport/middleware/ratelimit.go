package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies a per-client token bucket. Clients are keyed by remote
// address; buckets refill continuously rather than on a fixed window.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*tokenBucket
	done    chan struct{}
}

type tokenBucket struct {
	tokens   float64
	capacity float64
	perSec   float64
	updated  time.Time
}

// NewRateLimiter starts a limiter whose idle-client sweeper runs every
// cleanupInterval. Stop it on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*tokenBucket),
		done:    make(chan struct{}),
	}
	go rl.sweep(cleanupInterval)
	return rl
}

// Stop ends the background sweeper.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Limit rejects requests beyond maxPerMinute per client with 429 and a
// Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(r.RemoteAddr, maxPerMinute) {
				retryAfter := int(60.0/float64(maxPerMinute)) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) take(key string, maxPerMinute int) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[key]
	if !ok {
		capacity := float64(maxPerMinute)
		b = &tokenBucket{
			tokens:   capacity,
			capacity: capacity,
			perSec:   capacity / 60.0,
			updated:  now,
		}
		rl.clients[key] = b
	}

	b.tokens += now.Sub(b.updated).Seconds() * b.perSec
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.updated = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.mu.Lock()
			for key, b := range rl.clients {
				if b.updated.Before(cutoff) {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}
