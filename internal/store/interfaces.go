package store

import (
	"context"
	"time"

	"github.com/heavymart/backend/models"
)

// UserRepository persists identity records. Role is the only authorization
// signal in the system, so this repository is the source of truth for it.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	SetLastLogin(ctx context.Context, id int64, at time.Time) error
}

// SessionRepository persists opaque bearer tokens. Deleting a row revokes the
// credential; expiry is enforced lazily by the auth service.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)
	DeleteSessionByToken(ctx context.Context, token string) error
	DeleteSessionsByUser(ctx context.Context, userID int64) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ProductRepository persists catalog entries.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListVisibleProducts(ctx context.Context) ([]models.Product, error)
	ListAllProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CountVisibleByCategory(ctx context.Context, name string) (int, error)
	RelabelCategory(ctx context.Context, categoryID int64, name string) error
}

// CategoryRepository persists product categories.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// EmailRepository persists templates and the append-only dispatch log.
type EmailRepository interface {
	CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error)
	ListTemplates(ctx context.Context) ([]models.EmailTemplate, error)
	UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error
	AppendLog(ctx context.Context, log models.EmailLog) (models.EmailLog, error)
	ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error)
}

// MediaRepository persists upload metadata; the uploads directory holds the
// bytes.
type MediaRepository interface {
	CreateMediaFile(ctx context.Context, file models.MediaFile) (models.MediaFile, error)
	GetMediaFileByFilename(ctx context.Context, filename string) (models.MediaFile, error)
	ListMediaFiles(ctx context.Context) ([]models.MediaFile, error)
	DeleteMediaFileByFilename(ctx context.Context, filename string) error
}

// ContentRepository is the primary (database) store of CMS page documents.
type ContentRepository interface {
	GetContent(ctx context.Context, contentType string) (models.SiteContent, error)
	PutContent(ctx context.Context, content models.SiteContent) error
}

// ContentFileStore is the on-disk fallback of the content layer: one JSON
// file per content type under a fixed directory.
type ContentFileStore interface {
	Load(contentType string) (models.SiteContent, error)
	Save(content models.SiteContent) error
}
