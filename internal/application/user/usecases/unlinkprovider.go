package usecases

import (
	"context"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type UnlinkProviderCommand struct {
	UserID   uint
	Provider string
}

type UnlinkProviderUseCase struct {
	userRepo  user.Repository
	oauthRepo user.OAuthAccountRepository
	auditRepo audit.Repository
	tx        TxManager
	logger    logger.Interface
}

func NewUnlinkProviderUseCase(
	userRepo user.Repository,
	oauthRepo user.OAuthAccountRepository,
	auditRepo audit.Repository,
	tx TxManager,
	logger logger.Interface,
) *UnlinkProviderUseCase {
	return &UnlinkProviderUseCase{
		userRepo:  userRepo,
		oauthRepo: oauthRepo,
		auditRepo: auditRepo,
		tx:        tx,
		logger:    logger,
	}
}

// Execute detaches a provider. The no-lockout rule: a user may only drop a
// provider while they hold a password, so every account keeps at least one
// way in. Passwords cannot be removed once set, so the check cannot race
// with a credential removal. The check, the delete, and the audit entry
// run inside one transaction; an unlink with no audit record never commits.
func (uc *UnlinkProviderUseCase) Execute(ctx context.Context, cmd UnlinkProviderCommand) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		account, err := uc.userRepo.GetByID(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load user for unlink", "error", err, "user_id", cmd.UserID)
			return apperrors.NewInternalError("failed to unlink provider")
		}
		if account == nil {
			return apperrors.NewNotFoundError("user")
		}

		if !account.HasPassword() {
			return apperrors.NewPasswordRequiredError(cmd.Provider)
		}

		linked, err := uc.oauthRepo.GetByUserID(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to list linked providers", "error", err, "user_id", cmd.UserID)
			return apperrors.NewInternalError("failed to unlink provider")
		}

		var target *user.OAuthAccount
		for _, l := range linked {
			if l.Provider == cmd.Provider {
				target = l
				break
			}
		}
		if target == nil {
			return apperrors.NewNotFoundError("linked provider")
		}

		existed, err := uc.oauthRepo.DeleteByUserAndProvider(ctx, cmd.UserID, cmd.Provider)
		if err != nil {
			uc.logger.Errorw("failed to delete provider linkage", "error", err, "user_id", cmd.UserID)
			return apperrors.NewInternalError("failed to unlink provider")
		}
		if !existed {
			return apperrors.NewNotFoundError("linked provider")
		}

		if err := uc.recordUnlink(ctx, cmd.UserID, target); err != nil {
			uc.logger.Errorw("failed to record unlink audit entry", "error", err, "user_id", cmd.UserID)
			return apperrors.NewInternalError("failed to unlink provider")
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("provider unlinked", "user_id", cmd.UserID, "provider", cmd.Provider)
	return nil
}

func (uc *UnlinkProviderUseCase) recordUnlink(ctx context.Context, userID uint, target *user.OAuthAccount) error {
	entry, err := audit.NewEntry(
		userID,
		constants.AuditActionAccountUnlink,
		"oauth_account",
		target.ID,
		map[string]any{
			"provider":       target.Provider,
			"provider_email": target.ProviderEmail,
		},
		nil,
	)
	if err != nil {
		return err
	}
	return uc.auditRepo.Insert(ctx, entry)
}
