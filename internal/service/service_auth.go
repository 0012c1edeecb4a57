package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification with bcrypt, the session
// token lifecycle, and the admin-facing user directory.
type authService struct {
	// users is the data-access layer for accounts.
	users store.UserRepository

	// sessions is the data-access layer for issued tokens.
	sessions store.SessionRepository

	// sessionTTL controls how long a newly issued session remains valid.
	sessionTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with session parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		users:      users,
		sessions:   sessions,
		sessionTTL: cfg.SessionTTL,
		logger:     logger,
	}
}

// Register creates a new storefront account.
//
// Email is lowercased and must be unique; the password is bcrypt-hashed
// before storage and the plaintext is discarded. The role is always
// [models.RoleUser] regardless of anything the caller supplied.
//
// Returns the persisted user or:
//   - ErrMissingFields if email or password is empty.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Email == "" || input.Password == "" {
		log.Error().Str("email", input.Email).Msg("registration with missing fields")
		return models.User{}, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Company:      input.Company,
		Phone:        input.Phone,
		Role:         models.RoleUser,
		Active:       true,
		PasswordHash: string(hash),
	}

	created, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// Login authenticates an existing user and issues a session.
//
// Unknown email, inactive account, and wrong password all map to
// ErrInvalidCredentials so the response never reveals which check failed.
// On success the user's last_login_at is stamped and a fresh opaque token
// with absolute expiry now+TTL is stored.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Session, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	user, err := a.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !user.Active {
		log.Warn().Int64("id", user.ID).Msg("login attempt on inactive account")
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn().Int64("id", user.ID).Msg("wrong password")
		return models.User{}, models.Session{}, ErrInvalidCredentials
	}

	now := time.Now()
	if err := a.users.SetLastLogin(ctx, user.ID, now); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("failed to stamp last login")
		return models.User{}, models.Session{}, fmt.Errorf("failed to stamp last login: %w", err)
	}
	lastLogin := now
	user.LastLoginAt = &lastLogin

	token, err := utils.GenerateSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.User{}, models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	session, err := a.sessions.CreateSession(ctx, models.Session{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: now.Add(a.sessionTTL),
	})
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("session creation ended with error")
		return models.User{}, models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return user, session, nil
}

// Logout revokes the presented session. Revoking an unknown token is a
// success; logout is idempotent.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessions.DeleteSessionByToken(ctx, token); err != nil {
		log.Err(err).Msg("session revocation ended with error")
		return fmt.Errorf("session revocation ended with error: %w", err)
	}

	return nil
}

// ResolveSession maps a presented bearer token to its live user.
//
// The session row must exist and not be expired, and its user must still
// exist and be active; every other outcome is ErrUnauthorized. Expired rows
// are deleted on sight.
func (a *authService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	session, err := a.sessions.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Msg("session lookup failed")
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(time.Now()) {
		// best-effort cleanup, the sweeper catches anything missed
		if err := a.sessions.DeleteSessionByToken(ctx, token); err != nil {
			log.Err(err).Msg("failed to delete expired session")
		}
		return models.User{}, ErrUnauthorized
	}

	user, err := a.users.FindUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Int64("id", session.UserID).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	if !user.Active {
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

// ListUsers returns the whole user directory, newest first. Admin only at
// the route layer.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := a.users.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing ended with error")
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}

// CreateUser creates an account on behalf of an administrator. Unlike
// Register it honors the supplied role and active flag.
func (a *authService) CreateUser(ctx context.Context, input AdminUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	if input.Email == "" || input.Password == "" {
		return models.User{}, ErrMissingFields
	}

	role := input.Role
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := a.users.CreateUser(ctx, models.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Company:      input.Company,
		Phone:        input.Phone,
		Role:         role,
		Active:       active,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser rewrites an account's identity fields. A non-empty password
// replaces the stored hash; empty keeps it. An administrator cannot demote
// their own account; that returns ErrInvalidOperation. Deactivating a user
// revokes all their sessions.
func (a *authService) UpdateUser(ctx context.Context, actor models.User, id int64, input AdminUserInput) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := a.users.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	role := input.Role
	if role == "" {
		role = current.Role
	}
	if role != models.RoleAdmin {
		role = models.RoleUser
	}
	if actor.ID == id && role != models.RoleAdmin && current.IsAdmin() {
		log.Warn().Int64("id", id).Msg("self-demotion rejected")
		return models.User{}, ErrInvalidOperation
	}

	updated := current
	if input.Email != "" {
		updated.Email = strings.ToLower(strings.TrimSpace(input.Email))
	}
	if input.FirstName != "" {
		updated.FirstName = input.FirstName
	}
	if input.LastName != "" {
		updated.LastName = input.LastName
	}
	if input.Company != "" {
		updated.Company = input.Company
	}
	if input.Phone != "" {
		updated.Phone = input.Phone
	}
	updated.Role = role
	if input.Active != nil {
		updated.Active = *input.Active
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		updated.PasswordHash = string(hash)
	}

	stored, err := a.users.UpdateUser(ctx, updated)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	if !stored.Active {
		if err := a.sessions.DeleteSessionsByUser(ctx, id); err != nil {
			log.Err(err).Int64("id", id).Msg("failed to revoke sessions of deactivated user")
		}
	}

	return stored, nil
}

// DeleteUser removes an account and revokes all its sessions. An
// administrator cannot delete their own account.
func (a *authService) DeleteUser(ctx context.Context, actor models.User, id int64) error {
	log := logger.FromContext(ctx)

	if actor.ID == id {
		log.Warn().Int64("id", id).Msg("self-deletion rejected")
		return ErrInvalidOperation
	}

	if err := a.users.DeleteUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	if err := a.sessions.DeleteSessionsByUser(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("failed to revoke sessions of deleted user")
		return fmt.Errorf("failed to revoke sessions of deleted user: %w", err)
	}

	return nil
}
