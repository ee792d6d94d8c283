package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"wordnest/internal/domain/game"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/logger"
)

// GameScoreRepository implements the game score repository backed by GORM.
type GameScoreRepository struct {
	db     *gorm.DB
	mapper *mappers.GameScoreMapper
	logger logger.Interface
}

// NewGameScoreRepository creates a new game score repository
func NewGameScoreRepository(db *gorm.DB, logger logger.Interface) game.Repository {
	return &GameScoreRepository{
		db:     db,
		mapper: mappers.NewGameScoreMapper(),
		logger: logger,
	}
}

// Create records a game round
func (r *GameScoreRepository) Create(ctx context.Context, score *game.Score) error {
	model := r.mapper.ToModel(score)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create game score",
			"user_id", score.UserID, "kind", score.Kind, "error", err)
		return fmt.Errorf("failed to create game score: %w", err)
	}

	score.ID = model.ID
	return nil
}

// ListByUser returns a user's rounds, newest first
func (r *GameScoreRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]*game.Score, error) {
	var scoreModels []*models.GameScoreModel

	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&scoreModels).Error; err != nil {
		r.logger.Errorw("failed to list game scores", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list game scores: %w", err)
	}

	return r.mapper.ToEntities(scoreModels), nil
}

// TotalPointsByUser sums game points per user
func (r *GameScoreRepository) TotalPointsByUser(ctx context.Context) (map[uint]int64, error) {
	type row struct {
		UserID uint
		Total  int64
	}

	var rows []row
	if err := r.db.WithContext(ctx).Model(&models.GameScoreModel{}).
		Select("user_id, SUM(points) AS total").
		Group("user_id").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to sum game points", "error", err)
		return nil, fmt.Errorf("failed to sum game points: %w", err)
	}

	totals := make(map[uint]int64, len(rows))
	for _, r := range rows {
		totals[r.UserID] = r.Total
	}
	return totals, nil
}
