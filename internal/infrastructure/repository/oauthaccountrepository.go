package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/persistence/mappers"
	"wordnest/internal/infrastructure/persistence/models"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// OAuthAccountRepository implements the OAuth account repository backed by GORM.
type OAuthAccountRepository struct {
	db     *gorm.DB
	mapper *mappers.OAuthAccountMapper
	logger logger.Interface
}

// NewOAuthAccountRepository creates a new OAuth account repository
func NewOAuthAccountRepository(db *gorm.DB, logger logger.Interface) user.OAuthAccountRepository {
	return &OAuthAccountRepository{
		db:     db,
		mapper: mappers.NewOAuthAccountMapper(),
		logger: logger,
	}
}

// Create inserts a new provider linkage
func (r *OAuthAccountRepository) Create(ctx context.Context, account *user.OAuthAccount) error {
	model := r.mapper.ToModel(account)

	if err := dbFor(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewAlreadyLinkedError(account.Provider)
		}
		r.logger.Errorw("failed to create oauth account",
			"user_id", account.UserID, "provider", account.Provider, "error", err)
		return fmt.Errorf("failed to create oauth account: %w", err)
	}

	account.ID = model.ID
	return nil
}

// GetByProviderAndUserID looks up a linkage by provider identity, (nil, nil) when absent
func (r *OAuthAccountRepository) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.OAuthAccount, error) {
	var model models.OAuthAccountModel

	err := dbFor(ctx, r.db).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get oauth account", "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to get oauth account: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetByUserID lists all linkages for a user
func (r *OAuthAccountRepository) GetByUserID(ctx context.Context, userID uint) ([]*user.OAuthAccount, error) {
	var accountModels []*models.OAuthAccountModel

	if err := dbFor(ctx, r.db).
		Where("user_id = ?", userID).
		Find(&accountModels).Error; err != nil {
		r.logger.Errorw("failed to list oauth accounts", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list oauth accounts: %w", err)
	}

	return r.mapper.ToEntities(accountModels), nil
}

// Update persists login bookkeeping changes
func (r *OAuthAccountRepository) Update(ctx context.Context, account *user.OAuthAccount) error {
	model := r.mapper.ToModel(account)

	if err := dbFor(ctx, r.db).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update oauth account", "id", account.ID, "error", err)
		return fmt.Errorf("failed to update oauth account: %w", err)
	}
	return nil
}

// DeleteByUserAndProvider removes a linkage; reports whether a row existed
func (r *OAuthAccountRepository) DeleteByUserAndProvider(ctx context.Context, userID uint, provider string) (bool, error) {
	result := dbFor(ctx, r.db).
		Where("user_id = ? AND provider = ?", userID, provider).
		Delete(&models.OAuthAccountModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete oauth account",
			"user_id", userID, "provider", provider, "error", result.Error)
		return false, fmt.Errorf("failed to delete oauth account: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}
