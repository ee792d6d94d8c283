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

func TestChangePassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := newFakeAuditRepo()
	emails := &fakeEmailService{}
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	uc := NewChangePasswordUseCase(userRepo, fakeHasher{}, emails, auditRepo, logger.NewLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          owner.ID(),
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "Ev3nBetterSecret",
	})
	require.NoError(t, err)

	updated, err := userRepo.GetByID(context.Background(), owner.ID())
	require.NoError(t, err)
	require.NoError(t, fakeHasher{}.Verify("Ev3nBetterSecret", *updated.PasswordHash()))

	assert.Contains(t, auditRepo.actions(), constants.AuditActionPasswordChange)
	assert.Equal(t, []string{"ada@example.com"}, emails.changed)
}

func TestChangePasswordSetsFirstPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	auditRepo := newFakeAuditRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "")

	uc := NewChangePasswordUseCase(userRepo, fakeHasher{}, &fakeEmailService{}, auditRepo, logger.NewLogger())

	// No current password to present; this is an OAuth-only account
	// setting one for the first time.
	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:      owner.ID(),
		NewPassword: "Ev3nBetterSecret",
	})
	require.NoError(t, err)

	updated, err := userRepo.GetByID(context.Background(), owner.ID())
	require.NoError(t, err)
	assert.True(t, updated.HasPassword())
	assert.Contains(t, auditRepo.actions(), constants.AuditActionPasswordSet)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	uc := NewChangePasswordUseCase(userRepo, fakeHasher{}, &fakeEmailService{}, newFakeAuditRepo(), logger.NewLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          owner.ID(),
		CurrentPassword: "WrongPass1",
		NewPassword:     "Ev3nBetterSecret",
	})
	authErr := apperrors.GetAuthError(err)
	require.NotNil(t, authErr)
	assert.Equal(t, apperrors.ErrorTypeInvalidCredentials, authErr.Type)
}

func TestChangePasswordRejectsWeakPassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	owner := seedUser(t, userRepo, "ada@example.com", "Ada", "Sup3rSecret")

	uc := NewChangePasswordUseCase(userRepo, fakeHasher{}, &fakeEmailService{}, newFakeAuditRepo(), logger.NewLogger())

	err := uc.Execute(context.Background(), ChangePasswordCommand{
		UserID:          owner.ID(),
		CurrentPassword: "Sup3rSecret",
		NewPassword:     "weak",
	})
	assert.True(t, apperrors.IsValidationError(err))
}
