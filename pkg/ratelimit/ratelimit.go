package ratelimit

import (
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	defaultMaxKeys = 1000
	defaultTTL     = 5 * time.Minute
)

// Limiter is a per-key token bucket limiter. Idle keys expire from an LRU so
// memory stays bounded.
type Limiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// New creates a limiter allowing requestsPerMin per key, with a burst of a
// tenth of that (at least 1).
func New(requestsPerMin int) *Limiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](defaultMaxKeys, nil, defaultTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// Allow consumes one token for key.
func (rl *Limiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrLimitExceeded, key)
	}
	return nil
}
