package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/models"
)

// maxUploadSize bounds one uploaded file at 10 MB.
const maxUploadSize = 10 << 20

// acceptedMimeTypes is the storefront image bucket. Anything else is
// rejected before a byte is written.
var acceptedMimeTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// mediaService is the concrete implementation of MediaService. The database
// row is the authoritative record of every upload; the uploads directory is
// only a blob store keyed by the generated filename.
type mediaService struct {
	repo store.MediaRepository

	// dir is the uploads blob directory, created at construction.
	dir string

	logger *logger.Logger
}

// NewMediaService constructs a MediaService over the given repository and the
// configured uploads directory, creating the directory if needed.
func NewMediaService(repo store.MediaRepository, cfg config.Files, logger *logger.Logger) (MediaService, error) {
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads directory: %w", err)
	}

	return &mediaService{
		repo:   repo,
		dir:    cfg.UploadsDir,
		logger: logger,
	}, nil
}

// SaveUpload writes one incoming file to the blob store under a generated
// `<unix-ts>-<uuid><ext>` name and records its authoritative metadata row.
// The blob is removed again if the metadata insert fails.
//
// Returns the stored record or:
//   - ErrFileTooLarge when the declared or actual size exceeds 10 MB.
//   - ErrUnsupportedMediaType when the MIME type is outside the image bucket.
func (m *mediaService) SaveUpload(ctx context.Context, input UploadInput) (models.MediaFile, error) {
	log := logger.FromContext(ctx)

	if input.Size > maxUploadSize {
		return models.MediaFile{}, ErrFileTooLarge
	}
	if !acceptedMimeTypes[strings.ToLower(input.MimeType)] {
		return models.MediaFile{}, ErrUnsupportedMediaType
	}

	filename := fmt.Sprintf("%d-%s%s", time.Now().Unix(), uuid.NewString(), strings.ToLower(filepath.Ext(input.OriginalName)))
	path := filepath.Join(m.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("path", path).Msg("failed to create upload blob")
		return models.MediaFile{}, fmt.Errorf("failed to create upload blob: %w", err)
	}

	written, err := io.Copy(dst, io.LimitReader(input.Content, maxUploadSize+1))
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		log.Err(err).Str("path", path).Msg("failed to write upload blob")
		return models.MediaFile{}, fmt.Errorf("failed to write upload blob: %w", err)
	}
	if written > maxUploadSize {
		os.Remove(path)
		return models.MediaFile{}, ErrFileTooLarge
	}

	record, err := m.repo.CreateMediaFile(ctx, models.MediaFile{
		Filename:     filename,
		OriginalName: input.OriginalName,
		MimeType:     input.MimeType,
		Size:         written,
		Path:         path,
		URL:          "/uploads/" + filename,
		UploadedBy:   input.UploadedBy,
	})
	if err != nil {
		os.Remove(path)
		log.Err(err).Str("filename", filename).Msg("upload metadata insert ended with error")
		return models.MediaFile{}, fmt.Errorf("upload metadata insert ended with error: %w", err)
	}

	return record, nil
}

// ListFiles returns all upload records, newest first.
func (m *mediaService) ListFiles(ctx context.Context) ([]models.MediaFile, error) {
	files, err := m.repo.ListMediaFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("upload listing ended with error: %w", err)
	}

	return files, nil
}

// DeleteFile removes the metadata row and then the blob. A missing blob is
// tolerated: the row was authoritative and it is gone.
func (m *mediaService) DeleteFile(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	record, err := m.repo.GetMediaFileByFilename(ctx, filename)
	if err != nil {
		return fmt.Errorf("upload lookup ended with error: %w", err)
	}

	if err := m.repo.DeleteMediaFileByFilename(ctx, filename); err != nil {
		log.Err(err).Str("filename", filename).Msg("upload metadata deletion ended with error")
		return fmt.Errorf("upload metadata deletion ended with error: %w", err)
	}

	if err := os.Remove(record.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("path", record.Path).Msg("failed to remove upload blob")
	}

	return nil
}
