package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"wordnest/internal/shared/biztime"
)

const (
	minSessionSecretBytes = 32
	maxSessionExpDays     = 7
)

// SessionClaims is the payload of a stateless session token. There is no
// server-side session row; the signed token is the whole session.
type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type SessionTokenService struct {
	secret  []byte
	expDays int
}

// NewSessionTokenService fails closed: a missing or short secret is a
// startup error, never a silently weaker token.
func NewSessionTokenService(secret string, expDays int) (*SessionTokenService, error) {
	if len(secret) < minSessionSecretBytes {
		return nil, fmt.Errorf("session secret must be at least %d bytes, got %d", minSessionSecretBytes, len(secret))
	}
	if expDays <= 0 || expDays > maxSessionExpDays {
		return nil, fmt.Errorf("session expiry must be between 1 and %d days, got %d", maxSessionExpDays, expDays)
	}
	return &SessionTokenService{
		secret:  []byte(secret),
		expDays: expDays,
	}, nil
}

func (s *SessionTokenService) Generate(userID uint, email, role string) (string, error) {
	now := biztime.NowUTC()
	claims := &SessionClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

func (s *SessionTokenService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// ExpSeconds returns the session lifetime in seconds, for cookie Max-Age.
func (s *SessionTokenService) ExpSeconds() int {
	return s.expDays * 24 * 60 * 60
}
