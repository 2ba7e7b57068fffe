package pappers

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/reflets-cli/internal/core/domain"
)

// RateLimiter throttles registry requests with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests per second.
// Zero or less disables throttling.
func NewRateLimiter(perSecond float64) *RateLimiter {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &RateLimiter{bucket: rate.NewLimiter(limit, 1)}
}

// Wait blocks until a request may be sent.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// Limit returns the configured requests per second.
func (r *RateLimiter) Limit() float64 {
	if r.bucket.Limit() == rate.Inf {
		return 0
	}
	return float64(r.bucket.Limit())
}

// defaultRateLimiter is used when a client is built without one.
func defaultRateLimiter() *RateLimiter {
	return NewRateLimiter(domain.DefaultRequestsPerSecond)
}
