package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

func seedUser(t *testing.T, repo *fakeUserRepo, email, name, password string) *user.User {
	t.Helper()

	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)
	nameVO, err := vo.NewName(name)
	require.NoError(t, err)

	u, err := user.NewUser(emailVO, nameVO)
	require.NoError(t, err)
	if password != "" {
		hash, err := fakeHasher{}.Hash(password)
		require.NoError(t, err)
		require.NoError(t, u.SetPasswordHash(hash))
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginWithPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	seeded := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	uc := NewLoginWithPasswordUseCase(userRepo, fakeHasher{}, fakeSessionIssuer{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginWithPasswordCommand{
		Email:    "Ada@Example.com",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	assert.Equal(t, seeded.ID(), result.User.ID())
	assert.NotEmpty(t, result.SessionToken)
}

func TestLoginWithPasswordFailuresAreUniform(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")
	seedUser(t, userRepo, "oauth-only@example.com", "Grace", "")

	uc := NewLoginWithPasswordUseCase(userRepo, fakeHasher{}, fakeSessionIssuer{}, logger.NewLogger())

	tests := []struct {
		name string
		cmd  LoginWithPasswordCommand
	}{
		{
			name: "unknown email",
			cmd:  LoginWithPasswordCommand{Email: "nobody@example.com", Password: "Sup3rSecret"},
		},
		{
			name: "wrong password",
			cmd:  LoginWithPasswordCommand{Email: "ada@example.com", Password: "WrongPass1"},
		},
		{
			name: "account without password",
			cmd:  LoginWithPasswordCommand{Email: "oauth-only@example.com", Password: "Sup3rSecret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Execute(context.Background(), tt.cmd)
			assert.Nil(t, result)

			authErr := apperrors.GetAuthError(err)
			require.NotNil(t, authErr)
			assert.Equal(t, apperrors.ErrorTypeInvalidCredentials, authErr.Type)
		})
	}
}
