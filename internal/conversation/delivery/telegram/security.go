package telegram

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// securityValidator guards the webhook against duplicate update deliveries
// and floods from a single chat.
type securityValidator struct {
	seen        *expirable.LRU[int64, struct{}]
	rateLimiter *rateLimiter
}

func newSecurityValidator(requestsPerMin int) *securityValidator {
	return &securityValidator{
		// Telegram retries undelivered updates with the same update_id; keep
		// ids around long enough to swallow the retry window.
		seen:        expirable.NewLRU[int64, struct{}](10000, nil, time.Minute*10),
		rateLimiter: newRateLimiter(requestsPerMin),
	}
}

// checkDuplicate records the update id and reports whether it was seen before.
func (v *securityValidator) checkDuplicate(updateID int64) bool {
	if _, ok := v.seen.Get(updateID); ok {
		return true
	}
	v.seen.Add(updateID, struct{}{})
	return false
}

// checkRateLimit enforces the per-chat rate limit.
func (v *securityValidator) checkRateLimit(chatID int64) error {
	return v.rateLimiter.Allow(chatID)
}

// rateLimiter is a per-chat token bucket with auto-cleanup of idle chats.
type rateLimiter struct {
	limiters *expirable.LRU[int64, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 30
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[int64, *rate.Limiter](1000, nil, time.Minute*5),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(chatID int64) error {
	limiter, ok := rl.limiters.Get(chatID)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(chatID, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for chat %d", chatID)
	}
	return nil
}
