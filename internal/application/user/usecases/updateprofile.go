package usecases

import (
	"context"

	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type UpdateProfileCommand struct {
	UserID    uint
	Name      string
	AvatarURL string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*user.User, error) {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for profile update", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to update profile")
	}
	if account == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	if cmd.Name != "" {
		name, err := vo.NewName(cmd.Name)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		account.SetName(name)
	}
	if cmd.AvatarURL != "" {
		account.SetAvatarURL(cmd.AvatarURL)
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to persist profile update", "error", err, "user_id", cmd.UserID)
		return nil, apperrors.NewInternalError("failed to update profile")
	}

	return account, nil
}
