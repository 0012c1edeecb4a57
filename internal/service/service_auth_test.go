package service

import (
	"context"
	"testing"
	"time"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users *mockUserRepo, sessions *mockSessionRepo) AuthService {
	return NewAuthService(users, sessions, config.Auth{SessionTTL: 24 * time.Hour}, logger.Nop())
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister_ForcesUserRole(t *testing.T) {
	var created models.User
	users := &mockUserRepo{
		CreateUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			created = user
			user.ID = 1
			return user, nil
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	got, err := svc.Register(context.Background(), RegisterInput{
		Email:    "Anna@HeavyMart.Example",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, created.Role)
	assert.Equal(t, "anna@heavymart.example", created.Email)
	assert.True(t, created.Active)
	assert.NotEqual(t, "secret", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
	assert.Equal(t, int64(1), got.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockSessionRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.c"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin_Success(t *testing.T) {
	hash := hashFor(t, "secret")
	var storedSession models.Session
	users := &mockUserRepo{
		FindUserByEmailFunc: func(_ context.Context, email string) (models.User, error) {
			return models.User{ID: 7, Email: email, Active: true, PasswordHash: hash}, nil
		},
		SetLastLoginFunc: func(_ context.Context, id int64, _ time.Time) error {
			assert.Equal(t, int64(7), id)
			return nil
		},
	}
	sessions := &mockSessionRepo{
		CreateSessionFunc: func(_ context.Context, session models.Session) (models.Session, error) {
			storedSession = session
			session.ID = 1
			return session, nil
		},
	}
	svc := newAuthService(users, sessions)

	user, session, err := svc.Login(context.Background(), "anna@heavymart.example", "secret")
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.NotNil(t, user.LastLoginAt)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, int64(7), storedSession.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), storedSession.ExpiresAt, time.Minute)
}

func TestLogin_WrongPassword_NoSession(t *testing.T) {
	hash := hashFor(t, "secret")
	users := &mockUserRepo{
		FindUserByEmailFunc: func(_ context.Context, email string) (models.User, error) {
			return models.User{ID: 7, Email: email, Active: true, PasswordHash: hash}, nil
		},
	}
	// CreateSessionFunc deliberately unset: a call would panic the test
	svc := newAuthService(users, &mockSessionRepo{})

	_, _, err := svc.Login(context.Background(), "anna@heavymart.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailAndInactiveLookAlike(t *testing.T) {
	users := &mockUserRepo{
		FindUserByEmailFunc: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	_, _, unknownErr := svc.Login(context.Background(), "ghost@heavymart.example", "x")
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	hash := hashFor(t, "secret")
	users.FindUserByEmailFunc = func(_ context.Context, email string) (models.User, error) {
		return models.User{ID: 7, Email: email, Active: false, PasswordHash: hash}, nil
	}

	_, _, inactiveErr := svc.Login(context.Background(), "anna@heavymart.example", "secret")
	assert.ErrorIs(t, inactiveErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr, inactiveErr)
}

func TestResolveSession_Expired(t *testing.T) {
	deleted := false
	sessions := &mockSessionRepo{
		FindSessionByTokenFunc: func(_ context.Context, _ string) (models.Session, error) {
			return models.Session{UserID: 7, Token: "stale", ExpiresAt: time.Now().Add(-time.Minute)}, nil
		},
		DeleteSessionByTokenFunc: func(_ context.Context, token string) error {
			deleted = true
			assert.Equal(t, "stale", token)
			return nil
		},
	}
	svc := newAuthService(&mockUserRepo{}, sessions)

	_, err := svc.ResolveSession(context.Background(), "stale")
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, deleted, "expired row should be deleted on sight")
}

func TestResolveSession_InactiveUser(t *testing.T) {
	sessions := &mockSessionRepo{
		FindSessionByTokenFunc: func(_ context.Context, _ string) (models.Session, error) {
			return models.Session{UserID: 7, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	users := &mockUserRepo{
		FindUserByIDFunc: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{ID: 7, Active: false}, nil
		},
	}
	svc := newAuthService(users, sessions)

	_, err := svc.ResolveSession(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveSession_Success(t *testing.T) {
	sessions := &mockSessionRepo{
		FindSessionByTokenFunc: func(_ context.Context, _ string) (models.Session, error) {
			return models.Session{UserID: 7, Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
		},
	}
	users := &mockUserRepo{
		FindUserByIDFunc: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "anna@heavymart.example", Role: models.RoleAdmin, Active: true}, nil
		},
	}
	svc := newAuthService(users, sessions)

	user, err := svc.ResolveSession(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.True(t, user.IsAdmin())
}

func TestDeleteUser_SelfDeletionRejected(t *testing.T) {
	svc := newAuthService(&mockUserRepo{}, &mockSessionRepo{})

	err := svc.DeleteUser(context.Background(), models.User{ID: 1, Role: models.RoleAdmin}, 1)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestDeleteUser_RevokesSessions(t *testing.T) {
	revoked := false
	users := &mockUserRepo{
		DeleteUserFunc: func(_ context.Context, id int64) error {
			assert.Equal(t, int64(2), id)
			return nil
		},
	}
	sessions := &mockSessionRepo{
		DeleteSessionsByUserFunc: func(_ context.Context, userID int64) error {
			revoked = true
			assert.Equal(t, int64(2), userID)
			return nil
		},
	}
	svc := newAuthService(users, sessions)

	require.NoError(t, svc.DeleteUser(context.Background(), models.User{ID: 1, Role: models.RoleAdmin}, 2))
	assert.True(t, revoked)
}

func TestUpdateUser_SelfDemotionRejected(t *testing.T) {
	users := &mockUserRepo{
		FindUserByIDFunc: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Role: models.RoleAdmin, Active: true}, nil
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	actor := models.User{ID: 1, Role: models.RoleAdmin}
	_, err := svc.UpdateUser(context.Background(), actor, 1, AdminUserInput{Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestUpdateUser_PasswordChange(t *testing.T) {
	oldHash := hashFor(t, "old-password")
	var stored models.User
	users := &mockUserRepo{
		FindUserByIDFunc: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "anna@heavymart.example", Role: models.RoleUser, Active: true, PasswordHash: oldHash}, nil
		},
		UpdateUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	actor := models.User{ID: 1, Role: models.RoleAdmin}
	_, err := svc.UpdateUser(context.Background(), actor, 2, AdminUserInput{Password: "new-password"})
	require.NoError(t, err)

	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.NotEqual(t, "new-password", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("new-password")))
}

func TestUpdateUser_EmptyPasswordKeepsHash(t *testing.T) {
	oldHash := hashFor(t, "old-password")
	var stored models.User
	users := &mockUserRepo{
		FindUserByIDFunc: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "anna@heavymart.example", Role: models.RoleUser, Active: true, PasswordHash: oldHash}, nil
		},
		UpdateUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			return user, nil
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	actor := models.User{ID: 1, Role: models.RoleAdmin}
	_, err := svc.UpdateUser(context.Background(), actor, 2, AdminUserInput{FirstName: "Anna"})
	require.NoError(t, err)

	assert.Equal(t, oldHash, stored.PasswordHash)
}

func TestCreateUser_AdminMaySetRole(t *testing.T) {
	var created models.User
	users := &mockUserRepo{
		CreateUserFunc: func(_ context.Context, user models.User) (models.User, error) {
			created = user
			user.ID = 3
			return user, nil
		},
	}
	svc := newAuthService(users, &mockSessionRepo{})

	_, err := svc.CreateUser(context.Background(), AdminUserInput{
		Email:    "new@heavymart.example",
		Password: "secret",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, created.Role)
}
