// Package usecases holds the leaderboard read and reconciliation
// operations.
package usecases

import (
	"context"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/cache"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// Ranking is the sorted-set view the leaderboard reads and the
// reconciliation job rewrites.
type Ranking interface {
	AddPoints(ctx context.Context, userID uint, points int64) error
	Top(ctx context.Context, limit int) ([]*cache.LeaderboardEntry, error)
	Rank(ctx context.Context, userID uint) (int, int64, error)
	Replace(ctx context.Context, totals map[uint]int64) error
}

const defaultTopLimit = 20

type GetLeaderboardCommand struct {
	Limit int
	// UserID, when set, fills the caller's own rank even when they are
	// outside the top.
	UserID uint
}

type RankedRow struct {
	Rank   int
	UserID uint
	Name   string
	Points int64
}

type GetLeaderboardResult struct {
	Rows []*RankedRow
	// Me is nil for anonymous callers and for users with no points yet.
	Me *RankedRow
}

type GetLeaderboardUseCase struct {
	ranking  Ranking
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetLeaderboardUseCase(ranking Ranking, userRepo user.Repository, logger logger.Interface) *GetLeaderboardUseCase {
	return &GetLeaderboardUseCase{ranking: ranking, userRepo: userRepo, logger: logger}
}

func (uc *GetLeaderboardUseCase) Execute(ctx context.Context, cmd GetLeaderboardCommand) (*GetLeaderboardResult, error) {
	limit := cmd.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultTopLimit
	}

	entries, err := uc.ranking.Top(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to read leaderboard", "error", err)
		return nil, apperrors.NewInternalError("failed to load leaderboard")
	}

	result := &GetLeaderboardResult{Rows: make([]*RankedRow, 0, len(entries))}
	for _, entry := range entries {
		result.Rows = append(result.Rows, &RankedRow{
			Rank:   entry.Rank,
			UserID: entry.UserID,
			Name:   uc.displayName(ctx, entry.UserID),
			Points: entry.Points,
		})
	}

	if cmd.UserID != 0 {
		rank, points, err := uc.ranking.Rank(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Warnw("failed to read own rank", "error", err, "user_id", cmd.UserID)
		} else if rank > 0 {
			result.Me = &RankedRow{
				Rank:   rank,
				UserID: cmd.UserID,
				Name:   uc.displayName(ctx, cmd.UserID),
				Points: points,
			}
		}
	}

	return result, nil
}

func (uc *GetLeaderboardUseCase) displayName(ctx context.Context, userID uint) string {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil || u == nil {
		return "Unknown"
	}
	return u.Name().String()
}
