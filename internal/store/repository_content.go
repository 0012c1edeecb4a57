package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
)

// contentRepository is the PostgreSQL-backed primary store of CMS page
// documents, one JSONB row per content type.
type contentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContentRepository constructs a [ContentRepository] backed by the provided
// database connection and logger.
func NewContentRepository(db *DB, logger *logger.Logger) ContentRepository {
	logger.Debug().Msg("creating content repository")
	return &contentRepository{
		db:     db,
		logger: logger,
	}
}

// GetContent retrieves the stored document for a content type. Returns
// [ErrContentNotFound] when no row exists so callers can fall back to the
// file store.
func (r *contentRepository) GetContent(ctx context.Context, contentType string) (models.SiteContent, error) {
	log := logger.FromContext(ctx)

	var c models.SiteContent
	err := r.db.QueryRowContext(ctx, getContent, contentType).Scan(&c.Type, &c.Document, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SiteContent{}, ErrContentNotFound
		}
		log.Err(err).Str("func", "*contentRepository.GetContent").Msg("error: scanning error")
		return models.SiteContent{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return c, nil
}

// PutContent replaces the whole document for a content type, inserting the
// row if it does not exist yet.
func (r *contentRepository) PutContent(ctx context.Context, content models.SiteContent) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, putContent, content.Type, content.Document, content.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*contentRepository.PutContent").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
