package service

import (
	"context"
	"io"

	"github.com/heavymart/backend/models"
)

// RegisterInput is the payload of self-service registration. Role is not
// part of it: self-registered accounts are always regular users.
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
}

// AdminUserInput is the payload of admin-side user create/update. Unlike
// self-registration it may set role and active. Password is optional on
// update: empty keeps the stored hash.
type AdminUserInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Active    *bool  `json:"active"`
}

// SendInput describes one dispatch request: a union of registered recipients
// (by user id) and raw addresses, plus the message, optionally seeded from a
// stored template.
type SendInput struct {
	UserIDs      []int64  `json:"userIds"`
	CustomEmails []string `json:"customEmails"`
	Subject      string   `json:"subject"`
	Body         string   `json:"body"`
	TemplateID   *int64   `json:"templateId"`
}

// UploadInput carries one incoming multipart file. Content is consumed
// exactly once.
type UploadInput struct {
	OriginalName string
	MimeType     string
	Size         int64
	Content      io.Reader
	UploadedBy   *int64
}

// AuthService owns credentials, sessions, and the admin user directory.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, models.Session, error)
	Logout(ctx context.Context, token string) error
	ResolveSession(ctx context.Context, token string) (models.User, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, input AdminUserInput) (models.User, error)
	UpdateUser(ctx context.Context, actor models.User, id int64, input AdminUserInput) (models.User, error)
	DeleteUser(ctx context.Context, actor models.User, id int64) error
}

// CatalogService owns products and categories.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListAllProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// ContentService owns CMS page documents with their dual DB/file persistence.
type ContentService interface {
	Get(ctx context.Context, contentType string) (models.SiteContent, error)
	Put(ctx context.Context, contentType string, doc models.Document) (models.SiteContent, error)
}

// EmailService owns templates, dispatch, and the send log.
type EmailService interface {
	CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error)
	ListTemplates(ctx context.Context) ([]models.EmailTemplate, error)
	UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	DeleteTemplate(ctx context.Context, id int64) error

	Send(ctx context.Context, input SendInput) (models.EmailLog, error)
	ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error)
}

// MediaService owns uploaded files: blob writes plus authoritative metadata.
type MediaService interface {
	SaveUpload(ctx context.Context, input UploadInput) (models.MediaFile, error)
	ListFiles(ctx context.Context) ([]models.MediaFile, error)
	DeleteFile(ctx context.Context, filename string) error
}
