package service

import (
	"github.com/heavymart/backend/internal/adapter"
	"github.com/heavymart/backend/internal/config"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/store"
)

// Services bundles every domain service behind one handle.
type Services struct {
	Auth    AuthService
	Catalog CatalogService
	Content ContentService
	Email   EmailService
	Media   MediaService
}

// NewServices wires all services over the shared storages, the outbound
// mailer, and the merged configuration.
func NewServices(storages *store.Storages, mailer adapter.Mailer, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	media, err := NewMediaService(storages.Media, cfg.Storage.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:    NewAuthService(storages.Users, storages.Sessions, cfg.Auth, logger),
		Catalog: NewCatalogService(storages.Products, storages.Categories, cfg.Catalog, logger),
		Content: NewContentService(storages.Content, storages.Files, logger),
		Email:   NewEmailService(storages.Email, storages.Users, mailer, cfg.Mail, logger),
		Media:   media,
	}, nil
}
