package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is the single-process fallback used when Redis is
// disabled. Same sliding-window semantics as the Redis limiter, held in a
// per-key timestamp slice.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string][]time.Time
}

func NewMemoryLimiter() Limiter {
	return &MemoryLimiter{
		entries: make(map[string][]time.Time),
	}
}

func (l *MemoryLimiter) Allow(ctx context.Context, key string, cfg Config) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	// Trim to the largest window we track.
	kept := l.entries[key][:0]
	for _, ts := range l.entries[key] {
		if now.Sub(ts) < time.Hour {
			kept = append(kept, ts)
		}
	}
	l.entries[key] = kept

	if cfg.RequestsPerMinute > 0 && l.countSince(key, now.Add(-time.Minute)) >= cfg.RequestsPerMinute {
		return false, nil
	}
	if cfg.RequestsPerHour > 0 && len(kept) >= cfg.RequestsPerHour {
		return false, nil
	}

	l.entries[key] = append(l.entries[key], now)
	return true, nil
}

func (l *MemoryLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, key)
	return nil
}

func (l *MemoryLimiter) countSince(key string, cutoff time.Time) int {
	count := 0
	for _, ts := range l.entries[key] {
		if ts.After(cutoff) {
			count++
		}
	}
	return count
}
