package http

import (
	"context"
	"sort"

	"wordnest/internal/domain/game"
	"wordnest/internal/domain/quiz"
	"wordnest/internal/infrastructure/cache"
)

// dbRanking answers leaderboard reads straight from the database totals.
// It backs deployments without Redis; incremental and replace writes are
// no-ops because every read recomputes.
type dbRanking struct {
	quizRepo quiz.Repository
	gameRepo game.Repository
}

func newDBRanking(quizRepo quiz.Repository, gameRepo game.Repository) *dbRanking {
	return &dbRanking{quizRepo: quizRepo, gameRepo: gameRepo}
}

func (r *dbRanking) AddPoints(ctx context.Context, userID uint, points int64) error { return nil }

func (r *dbRanking) Replace(ctx context.Context, totals map[uint]int64) error { return nil }

func (r *dbRanking) Top(ctx context.Context, limit int) ([]*cache.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	entries, err := r.ranked(ctx)
	if err != nil {
		return nil, err
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *dbRanking) Rank(ctx context.Context, userID uint) (int, int64, error) {
	entries, err := r.ranked(ctx)
	if err != nil {
		return 0, 0, err
	}
	for _, entry := range entries {
		if entry.UserID == userID {
			return entry.Rank, entry.Points, nil
		}
	}
	return 0, 0, nil
}

func (r *dbRanking) ranked(ctx context.Context) ([]*cache.LeaderboardEntry, error) {
	quizTotals, err := r.quizRepo.TotalScoreByUser(ctx)
	if err != nil {
		return nil, err
	}
	gameTotals, err := r.gameRepo.TotalPointsByUser(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int64, len(quizTotals)+len(gameTotals))
	for userID, points := range quizTotals {
		totals[userID] += points
	}
	for userID, points := range gameTotals {
		totals[userID] += points
	}

	entries := make([]*cache.LeaderboardEntry, 0, len(totals))
	for userID, points := range totals {
		entries = append(entries, &cache.LeaderboardEntry{UserID: userID, Points: points})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})
	for i, entry := range entries {
		entry.Rank = i + 1
	}
	return entries, nil
}
