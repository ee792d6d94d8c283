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

func newRegisterFixture() (*RegisterWithPasswordUseCase, *fakeUserRepo, *fakeAuditRepo, *fakeEmailService) {
	userRepo := newFakeUserRepo()
	auditRepo := newFakeAuditRepo()
	emails := &fakeEmailService{}
	uc := NewRegisterWithPasswordUseCase(
		userRepo,
		fakeHasher{},
		fakeSessionIssuer{},
		emails,
		auditRepo,
		24,
		logger.NewLogger(),
	)
	return uc, userRepo, auditRepo, emails
}

func TestRegisterWithPassword(t *testing.T) {
	uc, userRepo, auditRepo, emails := newRegisterFixture()

	result, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotZero(t, result.User.ID())
	assert.Equal(t, "ada@example.com", result.User.Email().String())
	assert.Equal(t, constants.RoleStudent, result.User.Role())
	assert.True(t, result.User.HasPassword())
	assert.False(t, result.User.EmailVerified())
	assert.NotEmpty(t, result.SessionToken)

	stored, err := userRepo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.NotNil(t, stored.EmailVerificationToken())

	assert.Contains(t, auditRepo.actions(), constants.AuditActionUserRegister)
	assert.Equal(t, []string{"ada@example.com"}, emails.verifications)
}

func TestRegisterWithPasswordDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newRegisterFixture()

	cmd := RegisterWithPasswordCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "Sup3rSecret",
	}
	_, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), cmd)
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestRegisterWithPasswordValidation(t *testing.T) {
	uc, _, _, _ := newRegisterFixture()

	tests := []struct {
		name string
		cmd  RegisterWithPasswordCommand
	}{
		{
			name: "invalid email",
			cmd:  RegisterWithPasswordCommand{Email: "not-an-email", Name: "Ada", Password: "Sup3rSecret"},
		},
		{
			name: "empty name",
			cmd:  RegisterWithPasswordCommand{Email: "ada@example.com", Name: "  ", Password: "Sup3rSecret"},
		},
		{
			name: "weak password",
			cmd:  RegisterWithPasswordCommand{Email: "ada@example.com", Name: "Ada", Password: "short"},
		},
		{
			name: "password missing digit",
			cmd:  RegisterWithPasswordCommand{Email: "ada@example.com", Name: "Ada", Password: "NoDigitsHere"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
		})
	}
}

// A password violating several rules reports every one of them, not just
// the first.
func TestRegisterWithPasswordNamesAllViolatedRules(t *testing.T) {
	uc, _, _, _ := newRegisterFixture()

	_, err := uc.Execute(context.Background(), RegisterWithPasswordCommand{
		Email:    "ada@example.com",
		Name:     "Ada",
		Password: "short",
	})
	require.Error(t, err)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	require.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)

	assert.Contains(t, appErr.Details, "password must be at least 8 characters long")
	assert.Contains(t, appErr.Details, "password must contain at least one uppercase letter")
	assert.Contains(t, appErr.Details, "password must contain at least one number")
}
