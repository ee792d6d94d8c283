package user

import (
	"context"
	"fmt"
	"time"
)

// OAuthAccount links a local user to an external provider identity.
// Unique per (provider, provider user id) and per (user id, provider).
type OAuthAccount struct {
	ID             uint
	UserID         uint
	Provider       string
	ProviderUserID string
	ProviderEmail  string
	LastLoginAt    *time.Time
	LoginCount     uint
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOAuthAccount creates a linkage when an OAuth sign-in or link completes.
func NewOAuthAccount(userID uint, provider, providerUserID, providerEmail string) (*OAuthAccount, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if providerUserID == "" {
		return nil, fmt.Errorf("provider user ID is required")
	}

	now := time.Now().UTC()
	return &OAuthAccount{
		UserID:         userID,
		Provider:       provider,
		ProviderUserID: providerUserID,
		ProviderEmail:  providerEmail,
		LoginCount:     1,
		LastLoginAt:    &now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// RecordLogin bumps the login counter on a returning OAuth sign-in.
func (o *OAuthAccount) RecordLogin() {
	o.LoginCount++
	now := time.Now().UTC()
	o.LastLoginAt = &now
	o.UpdatedAt = now
}

// OAuthAccountRepository persists provider linkages.
type OAuthAccountRepository interface {
	Create(ctx context.Context, account *OAuthAccount) error
	GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*OAuthAccount, error)
	GetByUserID(ctx context.Context, userID uint) ([]*OAuthAccount, error)
	Update(ctx context.Context, account *OAuthAccount) error
	// DeleteByUserAndProvider removes a linkage; reports whether a row
	// existed.
	DeleteByUserAndProvider(ctx context.Context, userID uint, provider string) (bool, error)
}
