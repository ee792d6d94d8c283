package usecases

import (
	"context"
	"fmt"

	"wordnest/internal/domain/game"
	"wordnest/internal/domain/quiz"
	"wordnest/internal/shared/logger"
)

// SyncLeaderboardUseCase rebuilds the ranking from the database totals.
// The sorted set drifts when incremental writes are lost (Redis restart,
// scores submitted while Redis was down), so a periodic job replaces it
// wholesale with quiz scores plus game points.
type SyncLeaderboardUseCase struct {
	quizRepo quiz.Repository
	gameRepo game.Repository
	ranking  Ranking
	logger   logger.Interface
}

func NewSyncLeaderboardUseCase(
	quizRepo quiz.Repository,
	gameRepo game.Repository,
	ranking Ranking,
	logger logger.Interface,
) *SyncLeaderboardUseCase {
	return &SyncLeaderboardUseCase{
		quizRepo: quizRepo,
		gameRepo: gameRepo,
		ranking:  ranking,
		logger:   logger,
	}
}

// Execute returns the number of ranked users after the rebuild.
func (uc *SyncLeaderboardUseCase) Execute(ctx context.Context) (int, error) {
	quizTotals, err := uc.quizRepo.TotalScoreByUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum quiz scores: %w", err)
	}
	gameTotals, err := uc.gameRepo.TotalPointsByUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum game points: %w", err)
	}

	totals := make(map[uint]int64, len(quizTotals)+len(gameTotals))
	for userID, points := range quizTotals {
		totals[userID] += points
	}
	for userID, points := range gameTotals {
		totals[userID] += points
	}

	if err := uc.ranking.Replace(ctx, totals); err != nil {
		return 0, fmt.Errorf("failed to replace leaderboard: %w", err)
	}

	uc.logger.Debugw("leaderboard reconciled", "users", len(totals))
	return len(totals), nil
}
