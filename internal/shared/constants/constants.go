package constants

const (
	// Environments
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination defaults
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserEmail = "user_email"
	ContextKeyUserRole  = "user_role"

	// OAuth providers
	ProviderGoogle = "google"

	// OAuth state modes
	StateModeSignIn = "signin"
	StateModeLink   = "link"

	// Audit actions
	AuditActionUserRegister   = "user_register"
	AuditActionAccountLink    = "account_link"
	AuditActionAccountUnlink  = "account_unlink"
	AuditActionPasswordSet    = "password_set"
	AuditActionPasswordChange = "password_change"

	// Roles
	RoleStudent = "student"
	RoleAdmin   = "admin"
)
