package usecases

import (
	"context"
	"fmt"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	"wordnest/internal/infrastructure/auth"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type HandleOAuthCallbackCommand struct {
	Provider string
	Code     string
	State    string
}

type HandleOAuthCallbackResult struct {
	User         *user.User
	SessionToken string
	IsNewUser    bool
	Linked       bool
	Redirect     string
}

type HandleOAuthCallbackUseCase struct {
	userRepo      user.Repository
	oauthRepo     user.OAuthAccountRepository
	stateStore    user.OAuthStateStore
	googleClient  auth.OAuthClient
	sessionIssuer SessionIssuer
	auditRepo     audit.Repository
	tx            TxManager
	logger        logger.Interface
}

func NewHandleOAuthCallbackUseCase(
	userRepo user.Repository,
	oauthRepo user.OAuthAccountRepository,
	stateStore user.OAuthStateStore,
	googleClient auth.OAuthClient,
	sessionIssuer SessionIssuer,
	auditRepo audit.Repository,
	tx TxManager,
	logger logger.Interface,
) *HandleOAuthCallbackUseCase {
	return &HandleOAuthCallbackUseCase{
		userRepo:      userRepo,
		oauthRepo:     oauthRepo,
		stateStore:    stateStore,
		googleClient:  googleClient,
		sessionIssuer: sessionIssuer,
		auditRepo:     auditRepo,
		tx:            tx,
		logger:        logger,
	}
}

// Execute completes an OAuth round trip. The state is redeemed first and
// exactly once; a replayed or foreign state fails before any provider
// traffic happens.
func (uc *HandleOAuthCallbackUseCase) Execute(ctx context.Context, cmd HandleOAuthCallbackCommand) (*HandleOAuthCallbackResult, error) {
	state, err := uc.stateStore.Consume(ctx, cmd.State)
	if err != nil {
		uc.logger.Errorw("failed to consume oauth state", "error", err)
		return nil, apperrors.NewInternalError("failed to process oauth callback")
	}
	if state == nil || state.Provider != cmd.Provider {
		return nil, apperrors.NewInvalidStateError()
	}

	client, err := uc.clientFor(cmd.Provider)
	if err != nil {
		return nil, err
	}

	accessToken, err := client.ExchangeCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to exchange oauth code", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewProviderError(cmd.Provider)
	}

	userInfo, err := client.GetUserInfo(ctx, accessToken)
	if err != nil {
		uc.logger.Errorw("failed to fetch oauth user info", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewProviderError(cmd.Provider)
	}
	if userInfo.ProviderID == "" {
		return nil, apperrors.NewProviderError(cmd.Provider, "provider returned no subject identifier")
	}

	if state.Mode == constants.StateModeLink {
		return uc.linkAccount(ctx, state, userInfo)
	}
	return uc.signIn(ctx, state, userInfo)
}

// linkAccount attaches the provider identity to the already-signed-in user
// bound into the state.
func (uc *HandleOAuthCallbackUseCase) linkAccount(ctx context.Context, state *user.OAuthState, userInfo *auth.OAuthUserInfo) (*HandleOAuthCallbackResult, error) {
	existing, err := uc.oauthRepo.GetByProviderAndUserID(ctx, userInfo.Provider, userInfo.ProviderID)
	if err != nil {
		uc.logger.Errorw("failed to look up oauth account", "error", err)
		return nil, apperrors.NewInternalError("failed to link account")
	}
	if existing != nil {
		return nil, apperrors.NewAlreadyLinkedError(userInfo.Provider)
	}

	owner, err := uc.userRepo.GetByID(ctx, state.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load linking user", "error", err, "user_id", state.UserID)
		return nil, apperrors.NewInternalError("failed to link account")
	}
	if owner == nil {
		return nil, apperrors.NewNotFoundError("user")
	}

	account, err := user.NewOAuthAccount(owner.ID(), userInfo.Provider, userInfo.ProviderID, userInfo.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// Linkage row and audit entry commit together or not at all.
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := uc.oauthRepo.Create(ctx, account); err != nil {
			if apperrors.IsAuthError(err) {
				return err
			}
			uc.logger.Errorw("failed to create oauth linkage", "error", err, "user_id", owner.ID())
			return apperrors.NewInternalError("failed to link account")
		}
		return uc.recordAudit(ctx, owner.ID(), constants.AuditActionAccountLink, account.ID, nil, map[string]any{
			"provider":       account.Provider,
			"provider_email": account.ProviderEmail,
		})
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to link account", "error", err, "user_id", owner.ID())
		return nil, apperrors.NewInternalError("failed to link account")
	}

	sessionToken, err := uc.sessionIssuer.Generate(owner.ID(), owner.Email().String(), owner.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", owner.ID())
		return nil, apperrors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("oauth account linked", "user_id", owner.ID(), "provider", userInfo.Provider)

	return &HandleOAuthCallbackResult{
		User:         owner,
		SessionToken: sessionToken,
		Linked:       true,
		Redirect:     state.Redirect,
	}, nil
}

// signIn resolves the provider identity to a local user, creating one on
// first contact. An existing user with the same verified email gets the
// provider attached rather than a duplicate account.
func (uc *HandleOAuthCallbackUseCase) signIn(ctx context.Context, state *user.OAuthState, userInfo *auth.OAuthUserInfo) (*HandleOAuthCallbackResult, error) {
	account, err := uc.oauthRepo.GetByProviderAndUserID(ctx, userInfo.Provider, userInfo.ProviderID)
	if err != nil {
		uc.logger.Errorw("failed to look up oauth account", "error", err)
		return nil, apperrors.NewInternalError("failed to process oauth sign-in")
	}

	var signedIn *user.User
	isNewUser := false

	switch {
	case account != nil:
		signedIn, err = uc.userRepo.GetByID(ctx, account.UserID)
		if err != nil {
			uc.logger.Errorw("failed to load user for oauth account", "error", err, "user_id", account.UserID)
			return nil, apperrors.NewInternalError("failed to process oauth sign-in")
		}
		if signedIn == nil {
			uc.logger.Errorw("oauth account references missing user", "oauth_account_id", account.ID)
			return nil, apperrors.NewInternalError("failed to process oauth sign-in")
		}

		account.RecordLogin()
		if err := uc.oauthRepo.Update(ctx, account); err != nil {
			uc.logger.Warnw("failed to record oauth login", "error", err, "oauth_account_id", account.ID)
		}

	default:
		// First contact: the user row (when new), the linkage row, and
		// their audit entries land in one transaction.
		err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
			var txErr error
			signedIn, isNewUser, txErr = uc.resolveByEmail(ctx, userInfo)
			if txErr != nil {
				return txErr
			}

			account, txErr = user.NewOAuthAccount(signedIn.ID(), userInfo.Provider, userInfo.ProviderID, userInfo.Email)
			if txErr != nil {
				return apperrors.NewValidationError(txErr.Error())
			}
			if txErr = uc.oauthRepo.Create(ctx, account); txErr != nil {
				if apperrors.IsAuthError(txErr) {
					return txErr
				}
				uc.logger.Errorw("failed to create oauth linkage", "error", txErr, "user_id", signedIn.ID())
				return apperrors.NewInternalError("failed to process oauth sign-in")
			}

			return uc.recordAudit(ctx, signedIn.ID(), constants.AuditActionAccountLink, account.ID, nil, map[string]any{
				"provider":       account.Provider,
				"provider_email": account.ProviderEmail,
			})
		})
		if err != nil {
			if apperrors.IsAppError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to process oauth sign-in", "error", err)
			return nil, apperrors.NewInternalError("failed to process oauth sign-in")
		}
	}

	sessionToken, err := uc.sessionIssuer.Generate(signedIn.ID(), signedIn.Email().String(), signedIn.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", signedIn.ID())
		return nil, apperrors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("oauth sign-in completed",
		"user_id", signedIn.ID(), "provider", userInfo.Provider, "new_user", isNewUser)

	return &HandleOAuthCallbackResult{
		User:         signedIn,
		SessionToken: sessionToken,
		IsNewUser:    isNewUser,
		Redirect:     state.Redirect,
	}, nil
}

// resolveByEmail finds the local user for a first-contact provider
// identity, registering one when the email is unknown.
func (uc *HandleOAuthCallbackUseCase) resolveByEmail(ctx context.Context, userInfo *auth.OAuthUserInfo) (*user.User, bool, error) {
	email, err := vo.NewEmail(userInfo.Email)
	if err != nil {
		return nil, false, apperrors.NewProviderError(userInfo.Provider, fmt.Sprintf("provider returned invalid email: %s", userInfo.Email))
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to look up user by email", "error", err)
		return nil, false, apperrors.NewInternalError("failed to process oauth sign-in")
	}
	if existing != nil {
		return existing, false, nil
	}

	name, err := vo.NewName(userInfo.Name)
	if err != nil {
		// Some providers return empty display names; fall back to the
		// local part of the email.
		name, err = vo.NewName(email.LocalPart())
		if err != nil {
			return nil, false, apperrors.NewProviderError(userInfo.Provider, "provider returned unusable profile")
		}
	}

	created, err := user.NewUser(email, name)
	if err != nil {
		return nil, false, apperrors.NewValidationError(err.Error())
	}
	created.SetAvatarURL(userInfo.Picture)
	if userInfo.EmailVerified {
		created.MarkEmailVerified()
	}

	if err := uc.userRepo.Create(ctx, created); err != nil {
		uc.logger.Errorw("failed to create user from oauth profile", "error", err)
		return nil, false, apperrors.NewInternalError("failed to process oauth sign-in")
	}

	if err := uc.recordAudit(ctx, created.ID(), constants.AuditActionUserRegister, created.ID(), nil, created.DisplayInfo()); err != nil {
		uc.logger.Errorw("failed to record registration audit entry", "error", err, "user_id", created.ID())
		return nil, false, apperrors.NewInternalError("failed to process oauth sign-in")
	}

	return created, true, nil
}

func (uc *HandleOAuthCallbackUseCase) clientFor(provider string) (auth.OAuthClient, error) {
	switch provider {
	case constants.ProviderGoogle:
		return uc.googleClient, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", provider))
	}
}

func (uc *HandleOAuthCallbackUseCase) recordAudit(ctx context.Context, actorID uint, action string, entityID uint, before, after any) error {
	entry, err := audit.NewEntry(actorID, action, "oauth_account", entityID, before, after)
	if err != nil {
		return err
	}
	if action == constants.AuditActionUserRegister {
		entry.EntityType = "user"
	}
	return uc.auditRepo.Insert(ctx, entry)
}
