package ratelimit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterPerMinute(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()
	cfg := Config{RequestsPerMinute: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, allowed, "4th request should be denied")

	// A different key is unaffected.
	allowed, err = limiter.Allow(ctx, "login:5.6.7.8", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterReset(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()
	cfg := Config{RequestsPerMinute: 1}

	allowed, err := limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "k"))

	allowed, err = limiter.Allow(ctx, "k", cfg)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiterZeroConfigAllowsAll(t *testing.T) {
	limiter := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(ctx, "k", Config{})
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
