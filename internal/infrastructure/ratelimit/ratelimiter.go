// Package ratelimit throttles credential endpoints. Sign-in and OAuth
// initiation are the only callers; everything else rides on the session.
package ratelimit

import "context"

type Config struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type Limiter interface {
	// Allow reports whether the keyed caller may proceed under the config.
	Allow(ctx context.Context, key string, cfg Config) (bool, error)
	// Reset clears all windows for a key.
	Reset(ctx context.Context, key string) error
}
