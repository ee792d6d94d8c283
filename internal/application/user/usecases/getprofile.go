package usecases

import (
	"context"

	"wordnest/internal/domain/user"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type GetProfileResult struct {
	User            *user.User
	LinkedProviders []*user.OAuthAccount
}

type GetProfileUseCase struct {
	userRepo  user.Repository
	oauthRepo user.OAuthAccountRepository
	logger    logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	oauthRepo user.OAuthAccountRepository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo:  userRepo,
		oauthRepo: oauthRepo,
		logger:    logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, userID uint) (*GetProfileResult, error) {
	account, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load profile", "error", err, "user_id", userID)
		return nil, apperrors.NewInternalError("failed to load profile")
	}
	if account == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	linked, err := uc.oauthRepo.GetByUserID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list linked providers", "error", err, "user_id", userID)
		return nil, apperrors.NewInternalError("failed to load profile")
	}

	return &GetProfileResult{
		User:            account,
		LinkedProviders: linked,
	}, nil
}
