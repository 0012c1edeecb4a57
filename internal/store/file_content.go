package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/models"
)

// fileContentStore is the on-disk fallback of the content layer. Each content
// type lives in its own <type>.json file under dir, so a corrupt write to one
// page never takes down the others.
type fileContentStore struct {
	logger *logger.Logger
	dir    string
}

// contentFileEnvelope is the on-disk shape of one content document.
type contentFileEnvelope struct {
	Type      string          `json:"type"`
	Document  models.Document `json:"document"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// NewFileContentStore constructs a [ContentFileStore] rooted at dir, creating
// the directory if it does not exist.
func NewFileContentStore(dir string, logger *logger.Logger) (ContentFileStore, error) {
	logger.Debug().Str("dir", dir).Msg("creating file content store")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}

	return &fileContentStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Load reads the document for a content type from disk. Returns
// [ErrContentNotFound] when no file exists yet.
func (s *fileContentStore) Load(contentType string) (models.SiteContent, error) {
	data, err := os.ReadFile(s.path(contentType))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.SiteContent{}, ErrContentNotFound
		}
		s.logger.Err(err).Str("func", "*fileContentStore.Load").Msg("error reading content file")
		return models.SiteContent{}, fmt.Errorf("reading content file: %w", err)
	}

	var envelope contentFileEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		s.logger.Err(err).Str("func", "*fileContentStore.Load").Msg("error decoding content file")
		return models.SiteContent{}, fmt.Errorf("decoding content file: %w", err)
	}

	return models.SiteContent{
		Type:      contentType,
		Document:  envelope.Document,
		UpdatedAt: envelope.UpdatedAt,
	}, nil
}

// Save writes the document atomically: into a temp file first, then renamed
// over the destination, so readers never observe a partial write.
func (s *fileContentStore) Save(content models.SiteContent) error {
	data, err := json.MarshalIndent(contentFileEnvelope{
		Type:      content.Type,
		Document:  content.Document,
		UpdatedAt: content.UpdatedAt,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding content file: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, content.Type+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp content file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing temp content file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp content file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(content.Type)); err != nil {
		os.Remove(tmp.Name())
		s.logger.Err(err).Str("func", "*fileContentStore.Save").Msg("error replacing content file")
		return fmt.Errorf("replacing content file: %w", err)
	}

	return nil
}

func (s *fileContentStore) path(contentType string) string {
	// content types are validated upstream, but never trust them as paths
	name := strings.ReplaceAll(contentType, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, name+".json")
}
