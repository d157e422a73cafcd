package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableUsers          = "users"
	TableSystemSettings = "system_settings"

	// Built-in system account, used when no site contact can be resolved
	SystemUserID       = 0
	SystemUsername     = "system"
	SystemUserLocale   = "en"
	DefaultLocale      = "en"
	DefaultSiteContact = SystemUsername

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
