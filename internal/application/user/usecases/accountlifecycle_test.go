package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// An OAuth-only account cannot drop its provider until a password exists.
// This walks the whole path: Google signup, unlink refused, first password
// set, unlink succeeds.
func TestOAuthOnlyAccountLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newCallbackFixture(googleProfile("goog-777", "grace@example.com"))

	state := f.issueState(t, constants.StateModeSignIn, 0)
	result, err := f.uc.Execute(ctx, HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	require.NoError(t, err)
	require.True(t, result.IsNewUser)
	userID := result.User.ID()

	unlink := NewUnlinkProviderUseCase(f.userRepo, f.oauthRepo, f.auditRepo, fakeTxManager{}, logger.NewLogger())

	err = unlink.Execute(ctx, UnlinkProviderCommand{UserID: userID, Provider: constants.ProviderGoogle})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypePasswordRequired, authErr.Type)

	linked, err := f.oauthRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, linked, 1)

	setPassword := NewChangePasswordUseCase(f.userRepo, fakeHasher{}, &fakeEmailService{}, f.auditRepo, logger.NewLogger())
	require.NoError(t, setPassword.Execute(ctx, ChangePasswordCommand{
		UserID:      userID,
		NewPassword: "Gr4ceHopper",
	}))

	require.NoError(t, unlink.Execute(ctx, UnlinkProviderCommand{UserID: userID, Provider: constants.ProviderGoogle}))

	linked, err = f.oauthRepo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	updated, err := f.userRepo.GetByID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, updated.HasPassword())
	assert.Contains(t, f.auditRepo.actions(), constants.AuditActionPasswordSet)
	assert.Contains(t, f.auditRepo.actions(), constants.AuditActionAccountUnlink)
}
