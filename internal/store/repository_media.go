package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
)

// mediaRepository is the PostgreSQL-backed implementation of
// [MediaRepository]. The stored filename is the external key; callers address
// files by it, never by numeric id.
type mediaRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMediaRepository constructs a [MediaRepository] backed by the provided
// database connection and logger.
func NewMediaRepository(db *DB, logger *logger.Logger) MediaRepository {
	logger.Debug().Msg("creating media repository")
	return &mediaRepository{
		db:     db,
		logger: logger,
	}
}

func scanMediaFile(row userScanner) (models.MediaFile, error) {
	var m models.MediaFile
	err := row.Scan(&m.ID, &m.Filename, &m.OriginalName, &m.MimeType, &m.Size, &m.Path, &m.URL, &m.UploadedBy, &m.CreatedAt)
	return m, err
}

// CreateMediaFile records metadata for a freshly written upload.
func (r *mediaRepository) CreateMediaFile(ctx context.Context, file models.MediaFile) (models.MediaFile, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createMediaFile,
		file.Filename, file.OriginalName, file.MimeType, file.Size, file.Path, file.URL, file.UploadedBy)

	created, err := scanMediaFile(row)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.CreateMediaFile").Msg("error: scanning error")
		return models.MediaFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetMediaFileByFilename retrieves the metadata row for a stored filename.
// Returns [ErrMediaNotFound] when no row matches.
func (r *mediaRepository) GetMediaFileByFilename(ctx context.Context, filename string) (models.MediaFile, error) {
	log := logger.FromContext(ctx)

	found, err := scanMediaFile(r.db.QueryRowContext(ctx, getMediaFileByFilename, filename))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MediaFile{}, ErrMediaNotFound
		}
		log.Err(err).Str("func", "*mediaRepository.GetMediaFileByFilename").Msg("error: scanning error")
		return models.MediaFile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// ListMediaFiles returns all upload records, newest first.
func (r *mediaRepository) ListMediaFiles(ctx context.Context) ([]models.MediaFile, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMediaFiles)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.ListMediaFiles").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.MediaFile, 0)
	for rows.Next() {
		m, err := scanMediaFile(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		files = append(files, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

// DeleteMediaFileByFilename removes a metadata row. Returns [ErrMediaNotFound]
// when the filename does not resolve; the caller removes the blob afterwards.
func (r *mediaRepository) DeleteMediaFileByFilename(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteMediaFileByFilename, filename)
	if err != nil {
		log.Err(err).Str("func", "*mediaRepository.DeleteMediaFileByFilename").Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrMediaNotFound
	}

	return nil
}
