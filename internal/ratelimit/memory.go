package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	expires time.Time
}

// MemoryLimiter keeps fixed-window counters in process memory.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	period  time.Duration
	windows map[string]*window
	now     func() time.Time
	hits    int
}

func NewMemoryLimiter(limit int, period time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	l.hits++
	if l.hits%1024 == 0 {
		l.evictExpired(now)
	}

	w, ok := l.windows[key]
	if !ok || !now.Before(w.expires) {
		w = &window{expires: now.Add(l.period)}
		l.windows[key] = w
	}
	w.count++

	return decide(w.count, l.limit, w.expires.Sub(now)), nil
}

func (l *MemoryLimiter) evictExpired(now time.Time) {
	for key, w := range l.windows {
		if !now.Before(w.expires) {
			delete(l.windows, key)
		}
	}
}
