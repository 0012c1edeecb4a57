package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenBytes is the entropy of a generated session token. 32 random
// bytes make guessing infeasible and keep the base64url form compact.
const sessionTokenBytes = 32

// GenerateSessionToken returns a new opaque bearer token: 32 bytes from
// crypto/rand, base64url-encoded without padding. The token carries no
// claims; the session row it names is the single source of truth.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
