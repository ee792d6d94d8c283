package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	"wordnest/internal/shared/biztime"
	"wordnest/internal/shared/logger"
)

// OAuthStateRepository is the database-backed OAuth state store, used when
// Redis is disabled. Single-use consumption rides on a conditional UPDATE
// of consumed_at, so two concurrent redemptions of the same value cannot
// both succeed.
type OAuthStateRepository struct {
	db     *gorm.DB
	mapper *mappers.OAuthStateMapper
	logger logger.Interface
}

// NewOAuthStateRepository creates a new OAuth state repository
func NewOAuthStateRepository(db *gorm.DB, logger logger.Interface) user.OAuthStateStore {
	return &OAuthStateRepository{
		db:     db,
		mapper: mappers.NewOAuthStateMapper(),
		logger: logger,
	}
}

// Create inserts a new state record
func (r *OAuthStateRepository) Create(ctx context.Context, state *user.OAuthState) error {
	model := r.mapper.ToModel(state)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create oauth state", "error", err)
		return fmt.Errorf("failed to create oauth state: %w", err)
	}
	return nil
}

// Consume redeems a state exactly once. The conditional update only
// matches an unconsumed, unexpired row; zero rows affected means the state
// is unknown, expired, or already used, and all three report (nil, nil).
func (r *OAuthStateRepository) Consume(ctx context.Context, value string) (*user.OAuthState, error) {
	if value == "" {
		return nil, nil
	}

	now := biztime.NowUTC()

	result := r.db.WithContext(ctx).Model(&models.OAuthStateModel{}).
		Where("value = ? AND consumed_at IS NULL AND expires_at > ?", value, now).
		Update("consumed_at", now)
	if result.Error != nil {
		r.logger.Errorw("failed to consume oauth state", "error", result.Error)
		return nil, fmt.Errorf("failed to consume oauth state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	var model models.OAuthStateModel
	if err := r.db.WithContext(ctx).Where("value = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load consumed oauth state: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// DeleteExpired purges stale state rows and returns how many were removed
func (r *OAuthStateRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ? OR consumed_at IS NOT NULL", before).
		Delete(&models.OAuthStateModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete expired oauth states", "error", result.Error)
		return 0, fmt.Errorf("failed to delete expired oauth states: %w", result.Error)
	}

	return result.RowsAffected, nil
}
