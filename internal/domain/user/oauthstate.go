package user

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"wordnest/internal/shared/constants"
)

// OAuthState is the server-held CSRF token round-tripped through the
// provider redirect. Single use: Issued -> Consumed or Issued -> Expired,
// both terminal.
type OAuthState struct {
	Value      string
	Provider   string
	Mode       string // constants.StateModeSignIn or constants.StateModeLink
	UserID     uint   // required when Mode is link
	Redirect   string
	CreatedAt  time.Time
	ExpiresAt  time.Time
	ConsumedAt *time.Time
}

// NewOAuthState issues a state record. When mode is link the requesting
// user id is bound into the record so the callback can attach the account
// to the right user.
func NewOAuthState(provider, mode string, userID uint, redirect string, ttl time.Duration) (*OAuthState, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	switch mode {
	case constants.StateModeSignIn:
	case constants.StateModeLink:
		if userID == 0 {
			return nil, fmt.Errorf("link mode requires a user ID")
		}
	default:
		return nil, fmt.Errorf("unknown state mode: %s", mode)
	}

	value, err := generateStateValue()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &OAuthState{
		Value:     value,
		Provider:  provider,
		Mode:      mode,
		UserID:    userID,
		Redirect:  redirect,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// IsExpired reports whether the record is past its TTL.
func (s *OAuthState) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// OAuthStateStore persists and consumes state records. Consume must be
// atomic: of any number of concurrent calls with the same value, exactly
// one receives the record.
type OAuthStateStore interface {
	Create(ctx context.Context, state *OAuthState) error
	// Consume atomically retrieves and retires a state record. Returns
	// (nil, nil) when the value is unknown, expired, or already consumed.
	Consume(ctx context.Context, value string) (*OAuthState, error)
	// DeleteExpired purges abandoned records older than the cutoff and
	// returns the number removed. Safe to run concurrently with Consume.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

func generateStateValue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state value: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
