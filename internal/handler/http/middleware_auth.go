package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
)

// auth enforces session-based authentication.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// via [service.AuthService.ResolveSession], and on success stores the
// authenticated user under [utils.UserCtxKey] and the raw token under
// [utils.SessionTokenCtxKey] before delegating to the next handler.
//
// Requests are rejected with 401 when the header is absent or malformed,
// the token is unknown or expired, or the session's user is gone or
// inactive.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, service.ErrUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, service.ErrUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.Auth.ResolveSession(ctx, token)
		if err != nil {
			if !errors.Is(err, service.ErrUnauthorized) {
				log.Err(err).Msg("session resolution failed")
			}
			writeError(w, service.ErrUnauthorized)
			return
		}

		// Store the resolved user and the raw token so downstream handlers
		// never re-resolve the session.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form
// "Authorization: <scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	token := parts[1]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
