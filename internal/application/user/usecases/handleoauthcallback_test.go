package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/user"
	"wordnest/internal/infrastructure/auth"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type callbackFixture struct {
	uc         *HandleOAuthCallbackUseCase
	userRepo   *fakeUserRepo
	oauthRepo  *fakeOAuthRepo
	stateStore *fakeStateStore
	auditRepo  *fakeAuditRepo
	client     *fakeOAuthClient
}

func newCallbackFixture(userInfo *auth.OAuthUserInfo) *callbackFixture {
	f := &callbackFixture{
		userRepo:   newFakeUserRepo(),
		oauthRepo:  newFakeOAuthRepo(),
		stateStore: newFakeStateStore(),
		auditRepo:  newFakeAuditRepo(),
		client:     &fakeOAuthClient{userInfo: userInfo},
	}
	f.uc = NewHandleOAuthCallbackUseCase(
		f.userRepo, f.oauthRepo, f.stateStore, f.client,
		fakeSessionIssuer{}, f.auditRepo, fakeTxManager{}, logger.NewLogger(),
	)
	return f
}

func (f *callbackFixture) issueState(t *testing.T, mode string, userID uint) *user.OAuthState {
	t.Helper()
	state, err := user.NewOAuthState(constants.ProviderGoogle, mode, userID, "/dashboard", 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, f.stateStore.Create(context.Background(), state))
	return state
}

func googleProfile(subject, email string) *auth.OAuthUserInfo {
	return &auth.OAuthUserInfo{
		Email:         email,
		Name:          "Ada Lovelace",
		Picture:       "https://lh3.example/photo.jpg",
		EmailVerified: true,
		Provider:      constants.ProviderGoogle,
		ProviderID:    subject,
	}
}

func TestHandleOAuthCallbackFirstSignInCreatesUser(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))
	state := f.issueState(t, constants.StateModeSignIn, 0)

	result, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	require.NoError(t, err)

	assert.True(t, result.IsNewUser)
	assert.Equal(t, "ada@example.com", result.User.Email().String())
	assert.True(t, result.User.EmailVerified())
	assert.Equal(t, "/dashboard", result.Redirect)
	assert.NotEmpty(t, result.SessionToken)

	linked, err := f.oauthRepo.GetByUserID(context.Background(), result.User.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "goog-123", linked[0].ProviderUserID)

	assert.Contains(t, f.auditRepo.actions(), constants.AuditActionUserRegister)
	assert.Contains(t, f.auditRepo.actions(), constants.AuditActionAccountLink)
}

func TestHandleOAuthCallbackReturningUser(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))

	first := f.issueState(t, constants.StateModeSignIn, 0)
	firstResult, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    first.Value,
	})
	require.NoError(t, err)

	second := f.issueState(t, constants.StateModeSignIn, 0)
	secondResult, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    second.Value,
	})
	require.NoError(t, err)

	assert.False(t, secondResult.IsNewUser)
	assert.Equal(t, firstResult.User.ID(), secondResult.User.ID())

	linked, err := f.oauthRepo.GetByUserID(context.Background(), firstResult.User.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, uint(2), linked[0].LoginCount)
}

func TestHandleOAuthCallbackAutoLinksByEmail(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))
	existing := seedUser(t, f.userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	state := f.issueState(t, constants.StateModeSignIn, 0)
	result, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	require.NoError(t, err)

	assert.False(t, result.IsNewUser)
	assert.Equal(t, existing.ID(), result.User.ID())

	linked, err := f.oauthRepo.GetByUserID(context.Background(), existing.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
}

func TestHandleOAuthCallbackStateSingleUse(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))
	state := f.issueState(t, constants.StateModeSignIn, 0)

	cmd := HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	}
	_, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), cmd)
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeInvalidState, authErr.Type)
}

func TestHandleOAuthCallbackRejectsForeignState(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))

	tests := []struct {
		name  string
		state string
	}{
		{name: "unknown state", state: "never-issued"},
		{name: "empty state", state: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
				Provider: constants.ProviderGoogle,
				Code:     "auth-code",
				State:    tt.state,
			})
			authErr := apperrors.GetAuthError(err)
			require.NotNil(t, authErr)
			assert.Equal(t, apperrors.ErrorTypeInvalidState, authErr.Type)
		})
	}
}

func TestHandleOAuthCallbackRejectsProviderMismatch(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))
	state := f.issueState(t, constants.StateModeSignIn, 0)

	_, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: "github",
		Code:     "auth-code",
		State:    state.Value,
	})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeInvalidState, authErr.Type)
}

func TestHandleOAuthCallbackLinkMode(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "grace@gmail.example"))
	owner := seedUser(t, f.userRepo, "grace@example.com", "Grace", "Sup3rSecret")

	state := f.issueState(t, constants.StateModeLink, owner.ID())
	result, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	require.NoError(t, err)

	assert.True(t, result.Linked)
	assert.Equal(t, owner.ID(), result.User.ID())

	linked, err := f.oauthRepo.GetByUserID(context.Background(), owner.ID())
	require.NoError(t, err)
	require.Len(t, linked, 1)
	assert.Equal(t, "grace@gmail.example", linked[0].ProviderEmail)
	assert.Contains(t, f.auditRepo.actions(), constants.AuditActionAccountLink)
}

func TestHandleOAuthCallbackLinkModeAlreadyLinked(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@gmail.example"))
	first := seedUser(t, f.userRepo, "ada@example.com", "Ada", "Sup3rSecret")
	second := seedUser(t, f.userRepo, "grace@example.com", "Grace", "Sup3rSecret")

	account, err := user.NewOAuthAccount(first.ID(), constants.ProviderGoogle, "goog-123", "ada@gmail.example")
	require.NoError(t, err)
	require.NoError(t, f.oauthRepo.Create(context.Background(), account))

	state := f.issueState(t, constants.StateModeLink, second.ID())
	_, err = f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeAlreadyLinked, authErr.Type)
}

func TestHandleOAuthCallbackProviderFailure(t *testing.T) {
	f := newCallbackFixture(googleProfile("goog-123", "ada@example.com"))
	f.client.exchangeErr = assert.AnError
	state := f.issueState(t, constants.StateModeSignIn, 0)

	_, err := f.uc.Execute(context.Background(), HandleOAuthCallbackCommand{
		Provider: constants.ProviderGoogle,
		Code:     "auth-code",
		State:    state.Value,
	})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeProviderError, authErr.Type)

	// The state was spent even though the exchange failed.
	consumed, err := f.stateStore.Consume(context.Background(), state.Value)
	require.NoError(t, err)
	assert.Nil(t, consumed)
}
