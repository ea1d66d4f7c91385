package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an application user. Users are soft-disabled via IsActive
// and never hard-deleted.
type User struct {
	UserID         string       `json:"userID" db:"user_id"`
	Email          string       `json:"email" db:"email"`
	PasswordHash   string       `json:"-" db:"password_hash"`
	FullName       string       `json:"fullName" db:"full_name"`
	AvatarURL      *string      `json:"avatarURL,omitempty" db:"avatar_url"`
	IsActive       bool         `json:"isActive" db:"is_active"`
	AuthProvider   AuthProvider `json:"authProvider" db:"auth_provider"`
	ProviderUserID *string      `json:"-" db:"provider_user_id"`
	LastLoginAt    *time.Time   `json:"lastLoginAt,omitempty" db:"last_login_at"`
	AuditFields
}
