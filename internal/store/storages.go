package store

import (
	"context"

	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
)

// Storages bundles every repository behind one handle so that wiring in main
// stays a single call.
type Storages struct {
	Users      UserRepository
	Sessions   SessionRepository
	Products   ProductRepository
	Categories CategoryRepository
	Email      EmailRepository
	Media      MediaRepository
	Content    ContentRepository
	Files      ContentFileStore

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations, prepares the file
// fallback store, and returns all repositories sharing the one connection
// pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	files, err := NewFileContentStore(cfg.Files.ContentDir, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users:      NewUserRepository(db, log),
		Sessions:   NewSessionRepository(db, log),
		Products:   NewProductRepository(db, log),
		Categories: NewCategoryRepository(db, log),
		Email:      NewEmailRepository(db, log),
		Media:      NewMediaRepository(db, log),
		Content:    NewContentRepository(db, log),
		Files:      files,
		db:         db,
	}, nil
}

// PingContext reports database reachability. The HTTP health endpoint relies
// on it.
func (s *Storages) PingContext(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
