package usecases

import (
	"context"
	"strings"

	"wordnest/internal/domain/user"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

// dummyHash absorbs a verification round when the email is unknown or the
// account has no password, so both failure paths cost the same as a real
// mismatch.
const dummyHash = "$argon2id$v=19$m=131072,t=3,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type LoginWithPasswordCommand struct {
	Email    string
	Password string
}

type LoginWithPasswordResult struct {
	User         *user.User
	SessionToken string
}

type LoginWithPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	sessionIssuer  SessionIssuer
	logger         logger.Interface
}

func NewLoginWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessionIssuer SessionIssuer,
	logger logger.Interface,
) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		sessionIssuer:  sessionIssuer,
		logger:         logger,
	}
}

// Execute signs a user in. Unknown email, OAuth-only account, and wrong
// password all collapse into the same invalid-credentials error.
func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, apperrors.NewInternalError("failed to process login")
	}

	if existing == nil || !existing.HasPassword() {
		_ = uc.passwordHasher.Verify(cmd.Password, dummyHash)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	if err := uc.passwordHasher.Verify(cmd.Password, *existing.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, apperrors.NewInvalidCredentialsError()
	}

	sessionToken, err := uc.sessionIssuer.Generate(existing.ID(), existing.Email().String(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", existing.ID())
		return nil, apperrors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &LoginWithPasswordResult{
		User:         existing,
		SessionToken: sessionToken,
	}, nil
}
