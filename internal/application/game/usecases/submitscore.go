// Package usecases holds the mini-game score operations.
package usecases

import (
	"context"

	"wordnest/internal/domain/game"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// PointsSink receives earned points for ranking.
type PointsSink interface {
	AddPoints(ctx context.Context, userID uint, points int64) error
}

type SubmitScoreCommand struct {
	UserID uint
	Kind   string
	Points int
}

type SubmitScoreUseCase struct {
	gameRepo game.Repository
	points   PointsSink
	logger   logger.Interface
}

func NewSubmitScoreUseCase(gameRepo game.Repository, points PointsSink, logger logger.Interface) *SubmitScoreUseCase {
	return &SubmitScoreUseCase{gameRepo: gameRepo, points: points, logger: logger}
}

func (uc *SubmitScoreUseCase) Execute(ctx context.Context, cmd SubmitScoreCommand) (*game.Score, error) {
	if cmd.UserID == 0 {
		return nil, apperrors.NewUnauthenticatedError()
	}

	score, err := game.NewScore(cmd.UserID, cmd.Kind, cmd.Points)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.gameRepo.Create(ctx, score); err != nil {
		uc.logger.Errorw("failed to record game score", "error", err, "user_id", cmd.UserID, "kind", cmd.Kind)
		return nil, apperrors.NewInternalError("failed to record game score")
	}

	if uc.points != nil && score.Points > 0 {
		if err := uc.points.AddPoints(ctx, score.UserID, int64(score.Points)); err != nil {
			uc.logger.Warnw("failed to add leaderboard points", "error", err, "user_id", score.UserID)
		}
	}

	uc.logger.Infow("game score recorded", "user_id", score.UserID, "kind", score.Kind, "points", score.Points)
	return score, nil
}
