package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name is a user's display name.
type Name struct {
	value string
}

// NewName validates and trims a display name.
func NewName(value string) (*Name, error) {
	normalized := strings.TrimSpace(value)

	if normalized == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if len(normalized) > 100 {
		return nil, fmt.Errorf("name cannot exceed 100 characters")
	}
	if strings.ContainsAny(normalized, "<>") {
		return nil, fmt.Errorf("name contains invalid characters")
	}

	return &Name{value: normalized}, nil
}

func (n *Name) String() string {
	return n.value
}

// DisplayName returns the name with each word title-cased.
func (n *Name) DisplayName() string {
	caser := cases.Title(language.Und)
	parts := strings.Fields(n.value)
	for i, part := range parts {
		parts[i] = caser.String(strings.ToLower(part))
	}
	return strings.Join(parts, " ")
}

func (n *Name) Equals(other *Name) bool {
	if n == nil || other == nil {
		return n == other
	}
	return strings.EqualFold(n.value, other.value)
}
