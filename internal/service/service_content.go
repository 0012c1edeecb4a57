package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
)

// contentService is the concrete implementation of ContentService. The
// database row is the primary copy of every page document; the per-type JSON
// file is both the fallback read path and a warm mirror refreshed on every
// successful write.
type contentService struct {
	db     store.ContentRepository
	files  store.ContentFileStore
	logger *logger.Logger
}

// NewContentService constructs a ContentService over the database repository
// and the on-disk fallback store.
func NewContentService(db store.ContentRepository, files store.ContentFileStore, logger *logger.Logger) ContentService {
	return &contentService{
		db:     db,
		files:  files,
		logger: logger,
	}
}

// Get resolves a page document through the chain DB → file → built-in
// default. A materialized default is persisted write-through (file always,
// DB best-effort) so subsequent reads are stable. Get never fails for a
// known content type; unknown types return ErrUnknownContentType.
func (c *contentService) Get(ctx context.Context, contentType string) (models.SiteContent, error) {
	log := logger.FromContext(ctx)

	if !IsKnownContentType(contentType) {
		return models.SiteContent{}, ErrUnknownContentType
	}

	content, err := c.db.GetContent(ctx, contentType)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, store.ErrContentNotFound) {
		log.Warn().Err(err).Str("type", contentType).Msg("content DB read failed, falling back to file")
	}

	content, fileErr := c.files.Load(contentType)
	if fileErr == nil {
		return content, nil
	}
	if !errors.Is(fileErr, store.ErrContentNotFound) {
		log.Warn().Err(fileErr).Str("type", contentType).Msg("content file read failed, serving default")
	}

	content = models.SiteContent{
		Type:      contentType,
		Document:  defaultContent(contentType),
		UpdatedAt: time.Now(),
	}
	if err := c.files.Save(content); err != nil {
		log.Err(err).Str("type", contentType).Msg("failed to materialize default content file")
	}
	if err := c.db.PutContent(ctx, content); err != nil {
		log.Warn().Err(err).Str("type", contentType).Msg("failed to materialize default content row")
	}

	return content, nil
}

// Put replaces the whole document for a content type and stamps updatedAt.
// The write targets the database first and always mirrors to the fallback
// file; when the database is unavailable the file alone carries the write.
func (c *contentService) Put(ctx context.Context, contentType string, doc models.Document) (models.SiteContent, error) {
	log := logger.FromContext(ctx)

	if !IsKnownContentType(contentType) {
		return models.SiteContent{}, ErrUnknownContentType
	}
	if doc == nil {
		return models.SiteContent{}, ErrMissingFields
	}

	content := models.SiteContent{
		Type:      contentType,
		Document:  doc,
		UpdatedAt: time.Now(),
	}

	dbErr := c.db.PutContent(ctx, content)
	if dbErr != nil {
		log.Warn().Err(dbErr).Str("type", contentType).Msg("content DB write failed, degrading to file")
	}

	if err := c.files.Save(content); err != nil {
		log.Err(err).Str("type", contentType).Msg("content file write failed")
		if dbErr != nil {
			return models.SiteContent{}, fmt.Errorf("content write failed on both backends: %w", err)
		}
	}

	return content, nil
}
