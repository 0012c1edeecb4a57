// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, opaque token generation, and other common operations.
package utils

import (
	"context"

	"github.com/heavymart/backend/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
// The auth middleware writes the resolved [models.User] under this key; use
// GetUserFromContext for type-safe retrieval.
var UserCtxKey = contextKey("user")

// SessionTokenCtxKey is the key used to store the raw bearer token that
// authenticated the current request. Logout reads it to know which session
// row to revoke.
var SessionTokenCtxKey = contextKey("sessionToken")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct models.User type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSessionTokenFromContext retrieves the raw bearer token of the current
// request from the context.
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenCtxKey).(string)
	return token, ok
}
