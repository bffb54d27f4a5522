package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hitFrom(t *testing.T, handler http.Handler, addr string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.RemoteAddr = addr
	handler.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_BurstUpToCapacity(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(10)(okHandler())

	for i := 0; i < 10; i++ {
		rec := hitFrom(t, handler, "10.0.0.1:4000")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}
}

func TestRateLimiter_RejectsWhenDrained(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(5)(okHandler())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hitFrom(t, handler, "10.0.0.2:4000").Code)
	}

	rec := hitFrom(t, handler, "10.0.0.2:4000")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_ClientsAreIsolated(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := rl.Limit(2)(okHandler())

	hitFrom(t, handler, "10.0.0.3:4000")
	hitFrom(t, handler, "10.0.0.3:4000")
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(t, handler, "10.0.0.3:4000").Code)

	// Another client still has a full bucket.
	assert.Equal(t, http.StatusOK, hitFrom(t, handler, "10.0.0.4:4000").Code)
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		hitFrom(t, handler, "10.0.0.5:4000")
	}
	assert.Equal(t, http.StatusTooManyRequests, hitFrom(t, handler, "10.0.0.5:4000").Code)

	time.Sleep(1100 * time.Millisecond)

	assert.Equal(t, http.StatusOK, hitFrom(t, handler, "10.0.0.5:4000").Code)
}
