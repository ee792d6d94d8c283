package valueobjects

import (
	"fmt"
	"unicode"
)

// PasswordPolicy defines the password strength rules.
type PasswordPolicy struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
}

// DefaultPasswordPolicy returns the policy applied at registration and
// password change: 8-100 characters with at least one uppercase letter,
// one lowercase letter, and one digit.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:        8,
		MaxLength:        100,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
	}
}

// StrengthResult reports validation as data instead of an error so callers
// can surface every violated rule at once.
type StrengthResult struct {
	IsValid bool
	Errors  []string
}

// ValidateStrength checks password against the policy. Pure; never errors
// out early, every violated rule is named in the result.
func (p *PasswordPolicy) ValidateStrength(password string) StrengthResult {
	var violations []string

	if len(password) < p.MinLength {
		violations = append(violations, fmt.Sprintf("password must be at least %d characters long", p.MinLength))
	}
	if p.MaxLength > 0 && len(password) > p.MaxLength {
		violations = append(violations, fmt.Sprintf("password must not exceed %d characters", p.MaxLength))
	}

	var hasUppercase, hasLowercase, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUppercase = true
		case unicode.IsLower(char):
			hasLowercase = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if p.RequireUppercase && !hasUppercase {
		violations = append(violations, "password must contain at least one uppercase letter")
	}
	if p.RequireLowercase && !hasLowercase {
		violations = append(violations, "password must contain at least one lowercase letter")
	}
	if p.RequireNumber && !hasNumber {
		violations = append(violations, "password must contain at least one number")
	}

	return StrengthResult{IsValid: len(violations) == 0, Errors: violations}
}
