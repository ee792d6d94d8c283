package valueobjects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStrength(t *testing.T) {
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name       string
		password   string
		wantValid  bool
		wantErrors []string
	}{
		{
			name:      "valid minimal password",
			password:  "Abcdef12",
			wantValid: true,
		},
		{
			name:      "valid long mixed password",
			password:  "CorrectHorse9BatteryStaple",
			wantValid: true,
		},
		{
			name:       "too short",
			password:   "Ab1",
			wantValid:  false,
			wantErrors: []string{"at least 8 characters"},
		},
		{
			name:       "too long",
			password:   "A1" + strings.Repeat("a", 120),
			wantValid:  false,
			wantErrors: []string{"not exceed 100 characters"},
		},
		{
			name:       "missing uppercase",
			password:   "abcdef12",
			wantValid:  false,
			wantErrors: []string{"uppercase"},
		},
		{
			name:       "missing lowercase",
			password:   "ABCDEF12",
			wantValid:  false,
			wantErrors: []string{"lowercase"},
		},
		{
			name:       "missing digit",
			password:   "Abcdefgh",
			wantValid:  false,
			wantErrors: []string{"one number"},
		},
		{
			name:      "every rule violated at once",
			password:  "@@@",
			wantValid: false,
			wantErrors: []string{
				"at least 8 characters",
				"uppercase",
				"lowercase",
				"one number",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := policy.ValidateStrength(tt.password)
			assert.Equal(t, tt.wantValid, result.IsValid)
			if tt.wantValid {
				assert.Empty(t, result.Errors)
				return
			}
			assert.Len(t, result.Errors, len(tt.wantErrors))
			for _, want := range tt.wantErrors {
				found := false
				for _, got := range result.Errors {
					if strings.Contains(got, want) {
						found = true
						break
					}
				}
				assert.True(t, found, "expected a violation mentioning %q, got %v", want, result.Errors)
			}
		})
	}
}

func TestNewEmailNormalizes(t *testing.T) {
	email, err := NewEmail("  Alice@Example.COM ")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", email.String())
}

func TestNewEmailRejectsInvalid(t *testing.T) {
	for _, bad := range []string{"", "no-at-sign", "a@b", "a b@example.com"} {
		_, err := NewEmail(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}
