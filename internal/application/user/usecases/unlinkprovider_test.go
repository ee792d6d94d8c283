package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/user"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

func TestUnlinkProvider(t *testing.T) {
	userRepo := newFakeUserRepo()
	oauthRepo := newFakeOAuthRepo()
	auditRepo := newFakeAuditRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	account, err := user.NewOAuthAccount(owner.ID(), constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)
	require.NoError(t, oauthRepo.Create(context.Background(), account))

	uc := NewUnlinkProviderUseCase(userRepo, oauthRepo, auditRepo, fakeTxManager{}, logger.NewLogger())

	err = uc.Execute(context.Background(), UnlinkProviderCommand{
		UserID:   owner.ID(),
		Provider: constants.ProviderGoogle,
	})
	require.NoError(t, err)

	linked, err := oauthRepo.GetByUserID(context.Background(), owner.ID())
	require.NoError(t, err)
	assert.Empty(t, linked)
	assert.Contains(t, auditRepo.actions(), constants.AuditActionAccountUnlink)
}

func TestUnlinkProviderRequiresPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	oauthRepo := newFakeOAuthRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "")

	account, err := user.NewOAuthAccount(owner.ID(), constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)
	require.NoError(t, oauthRepo.Create(context.Background(), account))

	uc := NewUnlinkProviderUseCase(userRepo, oauthRepo, newFakeAuditRepo(), fakeTxManager{}, logger.NewLogger())

	err = uc.Execute(context.Background(), UnlinkProviderCommand{
		UserID:   owner.ID(),
		Provider: constants.ProviderGoogle,
	})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypePasswordRequired, authErr.Type)

	// The only sign-in path is still attached.
	linked, err := oauthRepo.GetByUserID(context.Background(), owner.ID())
	require.NoError(t, err)
	assert.Len(t, linked, 1)
}

func TestUnlinkProviderNotLinked(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	uc := NewUnlinkProviderUseCase(userRepo, newFakeOAuthRepo(), newFakeAuditRepo(), fakeTxManager{}, logger.NewLogger())

	err := uc.Execute(context.Background(), UnlinkProviderCommand{
		UserID:   owner.ID(),
		Provider: constants.ProviderGoogle,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestUnlinkProviderUnknownUser(t *testing.T) {
	uc := NewUnlinkProviderUseCase(newFakeUserRepo(), newFakeOAuthRepo(), newFakeAuditRepo(), fakeTxManager{}, logger.NewLogger())

	err := uc.Execute(context.Background(), UnlinkProviderCommand{
		UserID:   42,
		Provider: constants.ProviderGoogle,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}

// An unlink whose audit entry cannot be written must fail rather than
// complete silently unaudited.
func TestUnlinkProviderFailsWhenAuditInsertFails(t *testing.T) {
	userRepo := newFakeUserRepo()
	oauthRepo := newFakeOAuthRepo()
	auditRepo := newFakeAuditRepo()
	auditRepo.insertErr = stderrors.New("audit store unavailable")
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	account, err := user.NewOAuthAccount(owner.ID(), constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)
	require.NoError(t, oauthRepo.Create(context.Background(), account))

	uc := NewUnlinkProviderUseCase(userRepo, oauthRepo, auditRepo, fakeTxManager{}, logger.NewLogger())

	err = uc.Execute(context.Background(), UnlinkProviderCommand{
		UserID:   owner.ID(),
		Provider: constants.ProviderGoogle,
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}
