package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wordnest/internal/domain/user"
)

// stateRecord is the wire form of an OAuth state in Redis. The key carries
// the state value; the record carries everything else.
type stateRecord struct {
	Provider  string    `json:"provider"`
	Mode      string    `json:"mode"`
	UserID    uint      `json:"user_id,omitempty"`
	Redirect  string    `json:"redirect,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RedisStateStore keeps OAuth states in Redis. GETDEL gives atomic
// single-use consumption; Redis TTL handles expiry on its own.
type RedisStateStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStateStore(client *redis.Client, prefix string) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStateStore) Create(ctx context.Context, state *user.OAuthState) error {
	if state == nil || state.Value == "" {
		return errors.New("state cannot be empty")
	}

	record := stateRecord{
		Provider:  state.Provider,
		Mode:      state.Mode,
		UserID:    state.UserID,
		Redirect:  state.Redirect,
		CreatedAt: state.CreatedAt,
		ExpiresAt: state.ExpiresAt,
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal state record: %w", err)
	}

	ttl := time.Until(state.ExpiresAt)
	if ttl <= 0 {
		return errors.New("state already expired")
	}

	if err := s.client.Set(ctx, s.buildKey(state.Value), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}
	return nil
}

// Consume atomically fetches and deletes a state via GETDEL, so a value can
// be redeemed exactly once. Unknown or expired states return (nil, nil);
// callers map that to a single invalid-state error.
func (s *RedisStateStore) Consume(ctx context.Context, value string) (*user.OAuthState, error) {
	if value == "" {
		return nil, nil
	}

	data, err := s.client.GetDel(ctx, s.buildKey(value)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to retrieve state from redis: %w", err)
	}

	var record stateRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state record: %w", err)
	}

	return &user.OAuthState{
		Value:     value,
		Provider:  record.Provider,
		Mode:      record.Mode,
		UserID:    record.UserID,
		Redirect:  record.Redirect,
		CreatedAt: record.CreatedAt,
		ExpiresAt: record.ExpiresAt,
	}, nil
}

// DeleteExpired is a no-op: Redis evicts states via key TTL.
func (s *RedisStateStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (s *RedisStateStore) buildKey(value string) string {
	return s.prefix + value
}
