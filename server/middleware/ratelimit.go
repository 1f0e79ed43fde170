package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dygo/dykit/errors"
)

const rateLimitWindow = time.Minute

// RateLimitConfig configures the rate limiting middleware.
type RateLimitConfig struct {
	// RequestsPerMinute is the maximum number of requests allowed per minute
	// per key.
	RequestsPerMinute int
	// KeyFunc extracts the rate limit key from a request. Defaults to client IP.
	KeyFunc func(*gin.Context) string
}

// RateLimit returns a Gin middleware applying per-key sliding-window rate
// limiting. Meant for abuse-prone routes such as login and register.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 60
	}
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = IPBasedKey
	}

	rl := &slidingWindow{
		hits:  make(map[string][]time.Time),
		limit: cfg.RequestsPerMinute,
	}
	go rl.evictLoop()

	body := apperrors.RateLimited().ToBody()

	return func(c *gin.Context) {
		if !rl.take(cfg.KeyFunc(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, body)
			return
		}
		c.Next()
	}
}

// IPBasedKey extracts the client IP for use as a rate limit key.
func IPBasedKey(c *gin.Context) string {
	return c.ClientIP()
}

type slidingWindow struct {
	mu    sync.Mutex
	hits  map[string][]time.Time
	limit int
}

// take records a hit for key and reports whether it fit inside the window.
func (rl *slidingWindow) take(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	recent := inWindow(rl.hits[key], now)
	if len(recent) >= rl.limit {
		rl.hits[key] = recent
		return false
	}
	rl.hits[key] = append(recent, now)
	return true
}

// evictLoop periodically drops keys whose hits have all aged out, so idle
// clients do not accumulate.
func (rl *slidingWindow) evictLoop() {
	ticker := time.NewTicker(5 * rateLimitWindow)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, times := range rl.hits {
			if recent := inWindow(times, now); len(recent) > 0 {
				rl.hits[key] = recent
			} else {
				delete(rl.hits, key)
			}
		}
		rl.mu.Unlock()
	}
}

// inWindow trims hits older than the rate limit window. Hits are appended in
// time order, so trimming is a prefix cut.
func inWindow(times []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rateLimitWindow)
	idx := 0
	for idx < len(times) && !times[idx].After(cutoff) {
		idx++
	}
	return times[idx:]
}
