package user

import (
	"fmt"
	"time"

	vo "wordnest/internal/domain/user/valueobjects"
	"wordnest/internal/shared/constants"
)

// User is the identity aggregate. A user always has at least one way to
// sign in: a password hash, a linked provider account, or both. The
// aggregate cannot see the account rows, so the guarantee is enforced by
// the linkage usecases; the aggregate contributes HasPassword for the
// check and refuses to clear the hash directly.
type User struct {
	id           uint
	email        *vo.Email
	name         *vo.Name
	role         string
	passwordHash *string
	avatarURL    string

	emailVerified              bool
	emailVerificationToken     *string
	emailVerificationExpiresAt *time.Time

	createdAt time.Time
	updatedAt time.Time
}

// NewUser creates a user at sign-up or at first OAuth sign-in. The password
// hash is attached separately because OAuth-born users never have one.
func NewUser(email *vo.Email, name *vo.Name) (*User, error) {
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	return &User{
		email:     email,
		name:      name,
		role:      constants.RoleStudent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// AuthData carries the credential fields when reloading from persistence.
type AuthData struct {
	PasswordHash               *string
	EmailVerified              bool
	EmailVerificationToken     *string
	EmailVerificationExpiresAt *time.Time
}

// Reconstruct rebuilds a user from persistence without firing invariant
// checks that only apply at creation time.
func Reconstruct(id uint, email *vo.Email, name *vo.Name, role, avatarURL string, createdAt, updatedAt time.Time, auth *AuthData) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if name == nil {
		return nil, fmt.Errorf("name is required")
	}

	u := &User{
		id:        id,
		email:     email,
		name:      name,
		role:      role,
		avatarURL: avatarURL,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	if auth != nil {
		u.passwordHash = auth.PasswordHash
		u.emailVerified = auth.EmailVerified
		u.emailVerificationToken = auth.EmailVerificationToken
		u.emailVerificationExpiresAt = auth.EmailVerificationExpiresAt
	}
	return u, nil
}

func (u *User) ID() uint          { return u.id }
func (u *User) Email() *vo.Email  { return u.email }
func (u *User) Name() *vo.Name    { return u.name }
func (u *User) Role() string      { return u.role }
func (u *User) AvatarURL() string { return u.avatarURL }
func (u *User) IsAdmin() bool     { return u.role == constants.RoleAdmin }

func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID syncs the store-assigned ID back after insert.
func (u *User) SetID(id uint) { u.id = id }

func (u *User) SetRole(role string) {
	u.role = role
	u.touch()
}

func (u *User) SetName(name *vo.Name) {
	if name != nil {
		u.name = name
		u.touch()
	}
}

func (u *User) SetAvatarURL(url string) {
	u.avatarURL = url
	u.touch()
}

// HasPassword reports whether password sign-in is available. The unlink
// policy depends on this: a user without a password may not drop their
// last provider account.
func (u *User) HasPassword() bool {
	return u.passwordHash != nil && *u.passwordHash != ""
}

func (u *User) PasswordHash() *string { return u.passwordHash }

// SetPasswordHash installs a new password hash. An empty hash is refused;
// removing the password entirely is not a supported operation, by the
// never-locked-out policy.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = &hash
	u.touch()
	return nil
}

func (u *User) EmailVerified() bool { return u.emailVerified }

func (u *User) EmailVerificationToken() *string { return u.emailVerificationToken }

func (u *User) EmailVerificationExpiresAt() *time.Time { return u.emailVerificationExpiresAt }

// MarkEmailVerified confirms the address and discards the token.
func (u *User) MarkEmailVerified() {
	u.emailVerified = true
	u.emailVerificationToken = nil
	u.emailVerificationExpiresAt = nil
	u.touch()
}

// SetEmailVerificationToken stores a pending verification token.
func (u *User) SetEmailVerificationToken(token string, expiresAt time.Time) {
	u.emailVerificationToken = &token
	u.emailVerificationExpiresAt = &expiresAt
	u.touch()
}

// CanVerifyWithToken checks token match and expiry.
func (u *User) CanVerifyWithToken(token string, now time.Time) bool {
	if u.emailVerificationToken == nil || *u.emailVerificationToken != token {
		return false
	}
	if u.emailVerificationExpiresAt != nil && now.After(*u.emailVerificationExpiresAt) {
		return false
	}
	return true
}

// DisplayInfo is the safe projection handed to API responses.
func (u *User) DisplayInfo() map[string]any {
	return map[string]any{
		"id":             u.id,
		"email":          u.email.String(),
		"name":           u.name.String(),
		"role":           u.role,
		"avatar_url":     u.avatarURL,
		"email_verified": u.emailVerified,
		"has_password":   u.HasPassword(),
	}
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
