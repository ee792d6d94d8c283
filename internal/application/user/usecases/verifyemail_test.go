package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordnest/internal/shared/logger"
	apperrors "wordnest/internal/shared/errors"
)

func TestVerifyEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")
	owner.SetEmailVerificationToken("token-abc", time.Now().UTC().Add(24*time.Hour))
	require.NoError(t, userRepo.Update(context.Background(), owner))

	uc := NewVerifyEmailUseCase(userRepo, logger.NewLogger())

	require.NoError(t, uc.Execute(context.Background(), VerifyEmailCommand{Token: "token-abc"}))

	updated, err := userRepo.GetByID(context.Background(), owner.ID())
	require.NoError(t, err)
	assert.True(t, updated.EmailVerified())
	assert.Nil(t, updated.EmailVerificationToken())
}

func TestVerifyEmailRejectsBadTokens(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")
	owner.SetEmailVerificationToken("token-abc", time.Now().UTC().Add(-time.Hour))
	require.NoError(t, userRepo.Update(context.Background(), owner))

	uc := NewVerifyEmailUseCase(userRepo, logger.NewLogger())

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired token", token: "token-abc"},
		{name: "unknown token", token: "never-issued"},
		{name: "empty token", token: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.Execute(context.Background(), VerifyEmailCommand{Token: tt.token})
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
