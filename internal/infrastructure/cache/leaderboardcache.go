package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:points"

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	UserID uint
	Points int64
	Rank   int
}

// RedisLeaderboard keeps the points ranking in a Redis sorted set. Writes
// are incremental on score submission; a periodic job reconciles the set
// against the database totals.
type RedisLeaderboard struct {
	client *redis.Client
}

func NewRedisLeaderboard(client *redis.Client) *RedisLeaderboard {
	return &RedisLeaderboard{client: client}
}

// AddPoints increments a user's points.
func (l *RedisLeaderboard) AddPoints(ctx context.Context, userID uint, points int64) error {
	if err := l.client.ZIncrBy(ctx, leaderboardKey, float64(points), memberFor(userID)).Err(); err != nil {
		return fmt.Errorf("failed to increment leaderboard points: %w", err)
	}
	return nil
}

// Top returns the highest-scoring users, best first.
func (l *RedisLeaderboard) Top(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	rows, err := l.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]*LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		member, ok := row.Member.(string)
		if !ok {
			continue
		}
		userID, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, &LeaderboardEntry{
			UserID: uint(userID),
			Points: int64(row.Score),
			Rank:   i + 1,
		})
	}
	return entries, nil
}

// Rank returns a user's rank (1-based) and points. Users with no points
// get rank 0.
func (l *RedisLeaderboard) Rank(ctx context.Context, userID uint) (int, int64, error) {
	member := memberFor(userID)

	rank, err := l.client.ZRevRank(ctx, leaderboardKey, member).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, 0, nil
		}
		return 0, 0, fmt.Errorf("failed to read leaderboard rank: %w", err)
	}

	score, err := l.client.ZScore(ctx, leaderboardKey, member).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read leaderboard score: %w", err)
	}
	return int(rank) + 1, int64(score), nil
}

// Replace swaps the whole set for the given totals. Used by the
// reconciliation job to correct drift from lost increments.
func (l *RedisLeaderboard) Replace(ctx context.Context, totals map[uint]int64) error {
	members := make([]redis.Z, 0, len(totals))
	for userID, points := range totals {
		members = append(members, redis.Z{
			Score:  float64(points),
			Member: memberFor(userID),
		})
	}

	pipe := l.client.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, leaderboardKey, members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard: %w", err)
	}
	return nil
}

func memberFor(userID uint) string {
	return strconv.FormatUint(uint64(userID), 10)
}
