// Package usecases holds the identity and session operations. Each file is
// one operation with a Command in and a Result out.
package usecases

import "context"

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// SessionIssuer mints signed session tokens.
type SessionIssuer interface {
	Generate(userID uint, email, role string) (string, error)
}

// EmailService sends transactional mail.
type EmailService interface {
	SendVerificationEmail(to, token string) error
	SendPasswordChangedEmail(to string) error
}

// TxManager runs a function inside one storage transaction. Repository
// calls made with the inner context join that transaction, so an account
// mutation and its audit entry commit or roll back together.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
