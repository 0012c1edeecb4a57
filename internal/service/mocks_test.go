package service

import (
	"context"
	"time"

	"github.com/heavymart/backend/internal/adapter"
	"github.com/heavymart/backend/models"
)

// Func-field mocks: each test assigns only the methods it expects to be
// called; an unassigned method panics, surfacing unexpected interactions.

type mockUserRepo struct {
	CreateUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	FindUserByIDFunc    func(ctx context.Context, id int64) (models.User, error)
	FindUsersByIDsFunc  func(ctx context.Context, ids []int64) ([]models.User, error)
	ListUsersFunc       func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	DeleteUserFunc      func(ctx context.Context, id int64) error
	SetLastLoginFunc    func(ctx context.Context, id int64, at time.Time) error
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.CreateUserFunc(ctx, user)
}
func (m *mockUserRepo) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.FindUserByEmailFunc(ctx, email)
}
func (m *mockUserRepo) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return m.FindUserByIDFunc(ctx, id)
}
func (m *mockUserRepo) FindUsersByIDs(ctx context.Context, ids []int64) ([]models.User, error) {
	return m.FindUsersByIDsFunc(ctx, ids)
}
func (m *mockUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.ListUsersFunc(ctx)
}
func (m *mockUserRepo) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.UpdateUserFunc(ctx, user)
}
func (m *mockUserRepo) DeleteUser(ctx context.Context, id int64) error {
	return m.DeleteUserFunc(ctx, id)
}
func (m *mockUserRepo) SetLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.SetLastLoginFunc(ctx, id, at)
}

type mockSessionRepo struct {
	CreateSessionFunc         func(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByTokenFunc    func(ctx context.Context, token string) (models.Session, error)
	DeleteSessionByTokenFunc  func(ctx context.Context, token string) error
	DeleteSessionsByUserFunc  func(ctx context.Context, userID int64) error
	DeleteExpiredSessionsFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	return m.CreateSessionFunc(ctx, session)
}
func (m *mockSessionRepo) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	return m.FindSessionByTokenFunc(ctx, token)
}
func (m *mockSessionRepo) DeleteSessionByToken(ctx context.Context, token string) error {
	return m.DeleteSessionByTokenFunc(ctx, token)
}
func (m *mockSessionRepo) DeleteSessionsByUser(ctx context.Context, userID int64) error {
	return m.DeleteSessionsByUserFunc(ctx, userID)
}
func (m *mockSessionRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return m.DeleteExpiredSessionsFunc(ctx, now)
}

type mockProductRepo struct {
	CreateProductFunc          func(ctx context.Context, product models.Product) (models.Product, error)
	GetProductFunc             func(ctx context.Context, id int64) (models.Product, error)
	ListVisibleProductsFunc    func(ctx context.Context) ([]models.Product, error)
	ListAllProductsFunc        func(ctx context.Context) ([]models.Product, error)
	UpdateProductFunc          func(ctx context.Context, update models.ProductUpdate) (models.Product, error)
	DeleteProductFunc          func(ctx context.Context, id int64) error
	CountVisibleByCategoryFunc func(ctx context.Context, name string) (int, error)
	RelabelCategoryFunc        func(ctx context.Context, categoryID int64, name string) error
}

func (m *mockProductRepo) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.CreateProductFunc(ctx, product)
}
func (m *mockProductRepo) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.GetProductFunc(ctx, id)
}
func (m *mockProductRepo) ListVisibleProducts(ctx context.Context) ([]models.Product, error) {
	return m.ListVisibleProductsFunc(ctx)
}
func (m *mockProductRepo) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.ListAllProductsFunc(ctx)
}
func (m *mockProductRepo) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	return m.UpdateProductFunc(ctx, update)
}
func (m *mockProductRepo) DeleteProduct(ctx context.Context, id int64) error {
	return m.DeleteProductFunc(ctx, id)
}
func (m *mockProductRepo) CountVisibleByCategory(ctx context.Context, name string) (int, error) {
	return m.CountVisibleByCategoryFunc(ctx, name)
}
func (m *mockProductRepo) RelabelCategory(ctx context.Context, categoryID int64, name string) error {
	return m.RelabelCategoryFunc(ctx, categoryID, name)
}

type mockCategoryRepo struct {
	CreateCategoryFunc func(ctx context.Context, category models.Category) (models.Category, error)
	GetCategoryFunc    func(ctx context.Context, id int64) (models.Category, error)
	ListCategoriesFunc func(ctx context.Context) ([]models.Category, error)
	UpdateCategoryFunc func(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id int64) error
}

func (m *mockCategoryRepo) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.CreateCategoryFunc(ctx, category)
}
func (m *mockCategoryRepo) GetCategory(ctx context.Context, id int64) (models.Category, error) {
	return m.GetCategoryFunc(ctx, id)
}
func (m *mockCategoryRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.ListCategoriesFunc(ctx)
}
func (m *mockCategoryRepo) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.UpdateCategoryFunc(ctx, category)
}
func (m *mockCategoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	return m.DeleteCategoryFunc(ctx, id)
}

type mockEmailRepo struct {
	CreateTemplateFunc func(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	GetTemplateFunc    func(ctx context.Context, id int64) (models.EmailTemplate, error)
	ListTemplatesFunc  func(ctx context.Context) ([]models.EmailTemplate, error)
	UpdateTemplateFunc func(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	DeleteTemplateFunc func(ctx context.Context, id int64) error
	AppendLogFunc      func(ctx context.Context, log models.EmailLog) (models.EmailLog, error)
	ListLogsFunc       func(ctx context.Context, limit uint64) ([]models.EmailLog, error)
}

func (m *mockEmailRepo) CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	return m.CreateTemplateFunc(ctx, tpl)
}
func (m *mockEmailRepo) GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error) {
	return m.GetTemplateFunc(ctx, id)
}
func (m *mockEmailRepo) ListTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	return m.ListTemplatesFunc(ctx)
}
func (m *mockEmailRepo) UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	return m.UpdateTemplateFunc(ctx, tpl)
}
func (m *mockEmailRepo) DeleteTemplate(ctx context.Context, id int64) error {
	return m.DeleteTemplateFunc(ctx, id)
}
func (m *mockEmailRepo) AppendLog(ctx context.Context, log models.EmailLog) (models.EmailLog, error) {
	return m.AppendLogFunc(ctx, log)
}
func (m *mockEmailRepo) ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error) {
	return m.ListLogsFunc(ctx, limit)
}

type mockContentRepo struct {
	GetContentFunc func(ctx context.Context, contentType string) (models.SiteContent, error)
	PutContentFunc func(ctx context.Context, content models.SiteContent) error
}

func (m *mockContentRepo) GetContent(ctx context.Context, contentType string) (models.SiteContent, error) {
	return m.GetContentFunc(ctx, contentType)
}
func (m *mockContentRepo) PutContent(ctx context.Context, content models.SiteContent) error {
	return m.PutContentFunc(ctx, content)
}

type mockContentFiles struct {
	LoadFunc func(contentType string) (models.SiteContent, error)
	SaveFunc func(content models.SiteContent) error
}

func (m *mockContentFiles) Load(contentType string) (models.SiteContent, error) {
	return m.LoadFunc(contentType)
}
func (m *mockContentFiles) Save(content models.SiteContent) error {
	return m.SaveFunc(content)
}

type mockMailer struct {
	SendFunc func(ctx context.Context, msg adapter.Message) error
	sent     []adapter.Message
}

func (m *mockMailer) Send(ctx context.Context, msg adapter.Message) error {
	m.sent = append(m.sent, msg)
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}
