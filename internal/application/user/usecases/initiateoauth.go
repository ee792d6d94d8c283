package usecases

import (
	"context"
	"fmt"
	"time"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/auth"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type InitiateOAuthCommand struct {
	Provider string
	// Mode is signin or link. Link requires UserID.
	Mode     string
	UserID   uint
	Redirect string
}

type InitiateOAuthResult struct {
	AuthURL string
	State   string
}

type InitiateOAuthUseCase struct {
	googleClient auth.OAuthClient
	stateStore   user.OAuthStateStore
	stateTTL     time.Duration
	logger       logger.Interface
}

func NewInitiateOAuthUseCase(
	googleClient auth.OAuthClient,
	stateStore user.OAuthStateStore,
	stateTTLMinutes int,
	logger logger.Interface,
) *InitiateOAuthUseCase {
	if stateTTLMinutes <= 0 {
		stateTTLMinutes = 10
	}
	return &InitiateOAuthUseCase{
		googleClient: googleClient,
		stateStore:   stateStore,
		stateTTL:     time.Duration(stateTTLMinutes) * time.Minute,
		logger:       logger,
	}
}

func (uc *InitiateOAuthUseCase) Execute(ctx context.Context, cmd InitiateOAuthCommand) (*InitiateOAuthResult, error) {
	client, err := uc.clientFor(cmd.Provider)
	if err != nil {
		return nil, err
	}

	state, err := user.NewOAuthState(cmd.Provider, cmd.Mode, cmd.UserID, cmd.Redirect, uc.stateTTL)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.stateStore.Create(ctx, state); err != nil {
		uc.logger.Errorw("failed to store oauth state", "error", err, "provider", cmd.Provider)
		return nil, apperrors.NewInternalError("failed to start oauth flow")
	}

	uc.logger.Infow("oauth flow initiated", "provider", cmd.Provider, "mode", cmd.Mode)

	return &InitiateOAuthResult{
		AuthURL: client.GetAuthURL(state.Value),
		State:   state.Value,
	}, nil
}

func (uc *InitiateOAuthUseCase) clientFor(provider string) (auth.OAuthClient, error) {
	switch provider {
	case constants.ProviderGoogle:
		return uc.googleClient, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unsupported OAuth provider: %s", provider))
	}
}
