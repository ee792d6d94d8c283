package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordnest/internal/domain/audit"
	"wordnest/internal/domain/user"
	vo "wordnest/internal/domain/user/valueobjects"
	"wordnest/internal/shared/biztime"
	"wordnest/internal/shared/constants"
	apperrors "wordnest/internal/shared/errors"
	"wordnest/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email    string
	Name     string
	Password string
}

type RegisterWithPasswordResult struct {
	User         *user.User
	SessionToken string
}

type RegisterWithPasswordUseCase struct {
	userRepo                 user.Repository
	passwordHasher           PasswordHasher
	passwordPolicy           *vo.PasswordPolicy
	sessionIssuer            SessionIssuer
	emailService             EmailService
	auditRepo                audit.Repository
	verificationExpiresHours int
	logger                   logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	sessionIssuer SessionIssuer,
	emailService EmailService,
	auditRepo audit.Repository,
	verificationExpiresHours int,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	if verificationExpiresHours <= 0 {
		verificationExpiresHours = 24
	}
	return &RegisterWithPasswordUseCase{
		userRepo:                 userRepo,
		passwordHasher:           hasher,
		passwordPolicy:           vo.DefaultPasswordPolicy(),
		sessionIssuer:            sessionIssuer,
		emailService:             emailService,
		auditRepo:                auditRepo,
		verificationExpiresHours: verificationExpiresHours,
		logger:                   logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if strength := uc.passwordPolicy.ValidateStrength(cmd.Password); !strength.IsValid {
		return nil, apperrors.NewValidationError("password does not meet requirements", strength.Errors...)
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, apperrors.NewInternalError("failed to process password")
	}

	newUser, err := user.NewUser(email, name)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if err := newUser.SetPasswordHash(hash); err != nil {
		return nil, apperrors.NewInternalError(err.Error())
	}

	token, err := vo.GenerateToken()
	if err != nil {
		uc.logger.Errorw("failed to generate verification token", "error", err)
		return nil, apperrors.NewInternalError("failed to generate verification token")
	}
	expiresAt := biztime.NowUTC().Add(time.Duration(uc.verificationExpiresHours) * time.Hour)
	newUser.SetEmailVerificationToken(token.Value(), expiresAt)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return nil, apperrors.NewConflictError(fmt.Sprintf("email %s is already registered", email.String()))
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, apperrors.NewInternalError("failed to create user")
	}

	uc.recordRegistration(ctx, newUser)

	if err := uc.emailService.SendVerificationEmail(email.String(), token.Value()); err != nil {
		uc.logger.Warnw("failed to send verification email", "error", err, "email", email.String())
	}

	sessionToken, err := uc.sessionIssuer.Generate(newUser.ID(), email.String(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue session token", "error", err, "user_id", newUser.ID())
		return nil, apperrors.NewInternalError("failed to issue session token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return &RegisterWithPasswordResult{
		User:         newUser,
		SessionToken: sessionToken,
	}, nil
}

func (uc *RegisterWithPasswordUseCase) recordRegistration(ctx context.Context, newUser *user.User) {
	entry, err := audit.NewEntry(
		newUser.ID(),
		constants.AuditActionUserRegister,
		"user",
		newUser.ID(),
		nil,
		newUser.DisplayInfo(),
	)
	if err != nil {
		uc.logger.Warnw("failed to build audit entry", "error", err)
		return
	}
	if err := uc.auditRepo.Insert(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record registration audit entry", "error", err, "user_id", newUser.ID())
	}
}
