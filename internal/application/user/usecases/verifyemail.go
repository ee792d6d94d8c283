package usecases

import (
	"context"

	"wordnest/internal/domain/user"
	"wordnest/internal/shared/biztime"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type VerifyEmailCommand struct {
	Token string
}

type VerifyEmailUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewVerifyEmailUseCase(userRepo user.Repository, logger logger.Interface) *VerifyEmailUseCase {
	return &VerifyEmailUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *VerifyEmailUseCase) Execute(ctx context.Context, cmd VerifyEmailCommand) error {
	if cmd.Token == "" {
		return apperrors.NewValidationError("verification token is required")
	}

	pending, err := uc.userRepo.GetByVerificationToken(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up verification token", "error", err)
		return apperrors.NewInternalError("failed to verify email")
	}
	if pending == nil || !pending.CanVerifyWithToken(cmd.Token, biztime.NowUTC()) {
		return apperrors.NewValidationError("verification token is invalid or expired")
	}

	pending.MarkEmailVerified()

	if err := uc.userRepo.Update(ctx, pending); err != nil {
		uc.logger.Errorw("failed to persist email verification", "error", err, "user_id", pending.ID())
		return apperrors.NewInternalError("failed to verify email")
	}

	uc.logger.Infow("email verified", "user_id", pending.ID())
	return nil
}
