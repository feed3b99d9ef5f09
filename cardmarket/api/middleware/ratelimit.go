package middleware

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/footycards/card-market/cardmarket/api/utils"
	"github.com/gofiber/fiber/v2"
)

// RateLimiter implements a simple in-memory sliding window rate limiter
type RateLimiter struct {
	requests map[string][]time.Time
	mutex    sync.Mutex
	window   time.Duration
	limit    int
	now      func() time.Time
}

// NewRateLimiter creates a new rate limiter. Stale keys are swept until ctx is done.
func NewRateLimiter(ctx context.Context, limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		requests: make(map[string][]time.Time),
		window:   window,
		limit:    limit,
		now:      time.Now,
	}

	go rl.cleanup(ctx)

	return rl
}

// Allow checks if a request should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	valid := rl.requests[key][:0]
	for _, req := range rl.requests[key] {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false
	}

	rl.requests[key] = append(valid, now)
	return true
}

func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		rl.mutex.Lock()
		cutoff := rl.now().Add(-rl.window * 2)
		for key, requests := range rl.requests {
			if len(requests) == 0 || !requests[len(requests)-1].After(cutoff) {
				delete(rl.requests, key)
			}
		}
		rl.mutex.Unlock()
	}
}

// RateLimit limits requests per user, falling back to the client IP.
// A zero limit disables it.
func RateLimit(limiter *RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if limiter == nil || limiter.limit <= 0 {
			return c.Next()
		}

		key := utils.GetIPAddress(c)
		if userID, ok := utils.UserID(c); ok {
			key = "user:" + strconv.FormatInt(userID, 10)
		}

		if !limiter.Allow(key) {
			slog.Warn("Rate limit exceeded",
				slog.String("type", "http"),
				slog.String("key", key),
				slog.String("path", c.Path()),
				slog.String("method", c.Method()),
				slog.Int("limit", limiter.limit),
				slog.Duration("window", limiter.window))

			return utils.SendError(c, fiber.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED",
				"Too many requests. Please try again later.", nil)
		}

		return c.Next()
	}
}
