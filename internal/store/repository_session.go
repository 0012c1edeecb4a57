package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func scanSession(row userScanner) (models.Session, error) {
	var s models.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt)
	return s, err
}

// CreateSession stores a freshly issued token row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Token, session.ExpiresAt)

	created, err := scanSession(row)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindSessionByToken resolves a presented bearer token to its session row.
// Returns [ErrSessionNotFound] when the token is unknown. Expiry is not
// checked here; the auth service owns that decision.
func (r *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	found, err := scanSession(r.db.QueryRowContext(ctx, findSessionByToken, token))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteSessionByToken revokes a single session. Deleting an already-absent
// token is not an error; logout is idempotent.
func (r *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionByToken, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByToken").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSessionsByUser revokes every session belonging to a user. Used when a
// user is deleted or deactivated.
func (r *sessionRepository) DeleteSessionsByUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSessionsByUser, userID); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsByUser").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry is before now and
// reports how many rows were purged.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
