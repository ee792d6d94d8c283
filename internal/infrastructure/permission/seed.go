package permission

import (
	"fmt"

	"wordnest/internal/shared/constants"
)

// defaultPolicies grants admins lesson and quiz authoring; students only
// consume. Read access to published content is not policy-gated, it only
// needs a session.
var defaultPolicies = [][3]string{
	{constants.RoleAdmin, "lessons", "manage"},
	{constants.RoleAdmin, "quizzes", "manage"},
	{constants.RoleAdmin, "audit", "read"},
}

func (e *Enforcer) seedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	policies, err := e.enforcer.GetPolicy()
	if err != nil {
		return fmt.Errorf("failed to read existing policies: %w", err)
	}
	if len(policies) > 0 {
		return nil
	}

	for _, p := range defaultPolicies {
		if _, err := e.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to seed policy %v: %w", p, err)
		}
	}

	if err := e.enforcer.SavePolicy(); err != nil {
		return fmt.Errorf("failed to save seeded policies: %w", err)
	}

	e.logger.Infow("seeded default role policies", "count", len(defaultPolicies))
	return nil
}
