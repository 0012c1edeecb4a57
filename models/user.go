package models

import "time"

// Roles recognised by the authorization layer. Role is the single
// authorization signal in the system: admin unlocks the management surface,
// everything else is a regular storefront account.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique (lowercased) login identifier.
	Email string `json:"email"`

	// FirstName and LastName are display attributes and also feed the
	// {firstName}/{lastName} placeholders of the email dispatcher.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Company and Phone are optional contact attributes.
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`

	// Role is either RoleAdmin or RoleUser.
	Role string `json:"role"`

	// Active gates login; inactive accounts authenticate as if unknown.
	Active bool `json:"active"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialised.
	PasswordHash string `json:"-"`

	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
