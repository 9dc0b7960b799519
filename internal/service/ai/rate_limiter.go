package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"lingua/backend/internal/logger"
)

// DefaultRateLimit is the default outbound QPS limit.
const DefaultRateLimit = 10

// RateLimiter caps the rate of outbound model calls so a burst of
// requests cannot exhaust the upstream quota. A limit of zero disables it.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new rate limiter with the given QPS.
// qps == 0 means unlimited.
func NewRateLimiter(qps int) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(toLimit(qps), burst(qps))}
}

// Wait blocks until a token is available or context is cancelled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}

func toLimit(qps int) rate.Limit {
	if qps <= 0 {
		return rate.Inf
	}
	return rate.Limit(qps)
}

func burst(qps int) int {
	if qps <= 0 {
		return 1
	}
	return qps
}

type rateLimitedProvider struct {
	Provider
	limiter *RateLimiter
}

// WithRateLimit wraps p so every Complete call waits for limiter first.
func WithRateLimit(p Provider, limiter *RateLimiter) Provider {
	if limiter == nil {
		return p
	}
	return &rateLimitedProvider{Provider: p, limiter: limiter}
}

func (p *rateLimitedProvider) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		logger.Warn("ai rate limit wait failed", "module", "ai", "action", "fetch", "resource", "ai", "result", "failed", "task", opts.Task, "error", err)
		return "", fmt.Errorf("rate limit: %w", err)
	}
	return p.Provider.Complete(ctx, messages, opts)
}
