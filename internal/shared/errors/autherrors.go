package errors

import (
	stderrors "errors"
	"net/http"
)

// Identity-specific error types.
const (
	// ErrorTypeUnauthenticated: no, expired, or invalid session. Recoverable
	// by signing in again.
	ErrorTypeUnauthenticated ErrorType = "unauthenticated"
	// ErrorTypeInvalidCredentials: wrong email or password. Deliberately does
	// not reveal which.
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	// ErrorTypeInvalidState: OAuth CSRF state missing, expired, already
	// consumed, or tampered with. The whole OAuth attempt must be aborted.
	ErrorTypeInvalidState ErrorType = "invalid_state"
	// ErrorTypeAlreadyLinked: the provider account is already attached.
	ErrorTypeAlreadyLinked ErrorType = "already_linked"
	// ErrorTypePasswordRequired: unlinking would leave the user with no way
	// to sign in.
	ErrorTypePasswordRequired ErrorType = "password_required"
	// ErrorTypeProviderError: the OAuth provider call failed. Transient; the
	// user may retry.
	ErrorTypeProviderError ErrorType = "provider_error"
)

// AuthError augments AppError with logging and security-tracking hints.
type AuthError struct {
	*AppError
	// ShouldLog marks errors worth an error-level log line. Expected
	// failures (bad password, expired session) stay quiet.
	ShouldLog bool
	// SecurityEvent marks errors that feed abuse detection.
	SecurityEvent bool
}

func (e *AuthError) Error() string { return e.AppError.Error() }

func (e *AuthError) Unwrap() error { return e.AppError }

func NewUnauthenticatedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeUnauthenticated,
			Message: "Authentication required",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog:     false,
		SecurityEvent: true,
	}
}

// NewInvalidStateError covers every state failure identically: not found,
// expired, consumed, and tampered states are indistinguishable to callers.
func NewInvalidStateError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidState,
			Message: "Sign-in attempt is no longer valid, please try again",
			Code:    http.StatusBadRequest,
		},
		ShouldLog:     true,
		SecurityEvent: true,
	}
}

func NewAlreadyLinkedError(provider string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAlreadyLinked,
			Message: "This " + provider + " account is already linked",
			Code:    http.StatusConflict,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewPasswordRequiredError(provider string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypePasswordRequired,
			Message: "You must set a password before unlinking " + provider,
			Code:    http.StatusForbidden,
		},
		ShouldLog:     false,
		SecurityEvent: false,
	}
}

func NewProviderError(provider string, details ...string) *AuthError {
	if len(details) == 0 {
		details = []string{"provider request failed"}
	}
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeProviderError,
			Message: "Sign-in with " + provider + " failed, please try again",
			Code:    http.StatusBadGateway,
			Details: details,
		},
		ShouldLog:     true,
		SecurityEvent: false,
	}
}

func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

func IsAuthError(err error) bool { return GetAuthError(err) != nil }

// ShouldLogAuthError reports whether the failure deserves an error-level
// log line. Unknown errors default to logging.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
