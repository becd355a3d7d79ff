// Package ratelimit implements fixed-window request counters keyed by an
// arbitrary string (typically scope plus client address).
//
// Two backends are provided: [MemoryLimiter] for a single instance and
// [RedisLimiter] for deployments where several instances share one budget.
package ratelimit

//go:generate mockgen -source=ratelimit.go -destination=../mock/ratelimit_mock.go -package=mock

import (
	"context"
	"time"
)

// Limiter counts one hit against key and reports whether it is allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Decision is the outcome of one counted hit.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAfter is the time left until the current window closes.
	ResetAfter time.Duration
}

func decide(count int64, limit int, resetAfter time.Duration) Decision {
	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    count <= int64(limit),
		Limit:      limit,
		Remaining:  remaining,
		ResetAfter: resetAfter,
	}
}
