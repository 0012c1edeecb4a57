package models

import "time"

// Session is an ephemeral server-side credential. The opaque random token is
// what clients present as a bearer token; the row is the single source of
// truth, so deleting it revokes the credential immediately.
type Session struct {
	ID        int64     `json:"-"`
	UserID    int64     `json:"-"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the session is past its absolute expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
