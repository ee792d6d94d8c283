package usecases

import (
	"context"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// ChangePasswordCommand covers both cases: setting a first password on an
// OAuth-born account (empty CurrentPassword, none stored) and rotating an
// existing one.
type ChangePasswordCommand struct {
	UserID          uint
	CurrentPassword string
	NewPassword     string
}

type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	passwordPolicy *vo.PasswordPolicy
	emailService   EmailService
	auditRepo      audit.Repository
	logger         logger.Interface
}

func NewChangePasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	emailService EmailService,
	auditRepo audit.Repository,
	logger logger.Interface,
) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		passwordPolicy: vo.DefaultPasswordPolicy(),
		emailService:   emailService,
		auditRepo:      auditRepo,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, cmd ChangePasswordCommand) error {
	account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load user for password change", "error", err, "user_id", cmd.UserID)
		return apperrors.NewInternalError("failed to change password")
	}
	if account == nil {
		return apperrors.NewNotFoundError("user")
	}

	hadPassword := account.HasPassword()
	if hadPassword {
		if err := uc.passwordHasher.Verify(cmd.CurrentPassword, *account.PasswordHash()); err != nil {
			return apperrors.NewInvalidCredentialsError()
		}
	}

	if strength := uc.passwordPolicy.ValidateStrength(cmd.NewPassword); !strength.IsValid {
		return apperrors.NewValidationError("password does not meet requirements", strength.Errors...)
	}

	hash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash new password", "error", err)
		return apperrors.NewInternalError("failed to change password")
	}
	if err := account.SetPasswordHash(hash); err != nil {
		return apperrors.NewInternalError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, account); err != nil {
		uc.logger.Errorw("failed to persist password change", "error", err, "user_id", account.ID())
		return apperrors.NewInternalError("failed to change password")
	}

	action := constants.AuditActionPasswordChange
	if !hadPassword {
		action = constants.AuditActionPasswordSet
	}
	uc.recordPasswordChange(ctx, account, action, hadPassword)

	if err := uc.emailService.SendPasswordChangedEmail(account.Email().String()); err != nil {
		uc.logger.Warnw("failed to send password changed email", "error", err, "user_id", account.ID())
	}

	uc.logger.Infow("password updated", "user_id", account.ID(), "action", action)
	return nil
}

func (uc *ChangePasswordUseCase) recordPasswordChange(ctx context.Context, account *user.User, action string, hadPassword bool) {
	entry, err := audit.NewEntry(
		account.ID(),
		action,
		"user",
		account.ID(),
		map[string]any{"has_password": hadPassword},
		map[string]any{"has_password": true},
	)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "error", err)
		return
	}
	if err := uc.auditRepo.Insert(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record password audit entry", "error", err, "user_id", account.ID())
	}
}
