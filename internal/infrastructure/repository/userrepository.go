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

// UserRepository implements the user repository interface backed by GORM.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := dbFor(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return user.ErrEmailTaken
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	userEntity.SetID(model.ID)

	r.logger.Infow("user created", "id", model.ID, "email", model.Email)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := dbFor(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByEmail retrieves a user by normalized email, (nil, nil) when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := dbFor(ctx, r.db).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByVerificationToken retrieves a user by pending email verification token
func (r *UserRepository) GetByVerificationToken(ctx context.Context, token string) (*user.User, error) {
	var model models.UserModel

	if err := dbFor(ctx, r.db).Where("email_verification_token = ?", token).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by verification token", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists changes to an existing user
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "id", userEntity.ID(), "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	// Save with Select("*") so cleared nullable columns (e.g. a consumed
	// verification token) are written back as NULL.
	result := dbFor(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return user.ErrEmailTaken
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// ExistsByEmail reports whether any user owns the email
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64

	if err := dbFor(ctx, r.db).Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check email existence", "error", err)
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return count > 0, nil
}
