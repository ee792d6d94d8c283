package valueobjects

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Token is an opaque random token used for email verification links.
type Token struct {
	value string
}

// GenerateToken draws 32 bytes from crypto/rand.
func GenerateToken() (*Token, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}
	return &Token{value: hex.EncodeToString(bytes)}, nil
}

func (t *Token) Value() string {
	return t.value
}
