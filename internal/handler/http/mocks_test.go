package http

import (
	"context"
	"testing"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/models"
)

// Func-field mocks for the service layer. Each test overrides only the
// methods it expects to be hit.

type mockAuthService struct {
	registerFn       func(ctx context.Context, input service.RegisterInput) (models.User, error)
	loginFn          func(ctx context.Context, email, password string) (models.User, models.Session, error)
	logoutFn         func(ctx context.Context, token string) error
	resolveSessionFn func(ctx context.Context, token string) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	createUserFn     func(ctx context.Context, input service.AdminUserInput) (models.User, error)
	updateUserFn     func(ctx context.Context, actor models.User, id int64, input service.AdminUserInput) (models.User, error)
	deleteUserFn     func(ctx context.Context, actor models.User, id int64) error
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (models.User, error) {
	return m.registerFn(ctx, input)
}
func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Session, error) {
	return m.loginFn(ctx, email, password)
}
func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}
func (m *mockAuthService) ResolveSession(ctx context.Context, token string) (models.User, error) {
	return m.resolveSessionFn(ctx, token)
}
func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}
func (m *mockAuthService) CreateUser(ctx context.Context, input service.AdminUserInput) (models.User, error) {
	return m.createUserFn(ctx, input)
}
func (m *mockAuthService) UpdateUser(ctx context.Context, actor models.User, id int64, input service.AdminUserInput) (models.User, error) {
	return m.updateUserFn(ctx, actor, id, input)
}
func (m *mockAuthService) DeleteUser(ctx context.Context, actor models.User, id int64) error {
	return m.deleteUserFn(ctx, actor, id)
}

type mockCatalogService struct {
	listProductsFn    func(ctx context.Context) ([]models.Product, error)
	listAllProductsFn func(ctx context.Context) ([]models.Product, error)
	getProductFn      func(ctx context.Context, id int64) (models.Product, error)
	createProductFn   func(ctx context.Context, product models.Product) (models.Product, error)
	updateProductFn   func(ctx context.Context, update models.ProductUpdate) (models.Product, error)
	deleteProductFn   func(ctx context.Context, id int64) error
	listCategoriesFn  func(ctx context.Context) ([]models.Category, error)
	createCategoryFn  func(ctx context.Context, category models.Category) (models.Category, error)
	updateCategoryFn  func(ctx context.Context, category models.Category) (models.Category, error)
	deleteCategoryFn  func(ctx context.Context, id int64) error
}

func (m *mockCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return m.listProductsFn(ctx)
}
func (m *mockCatalogService) ListAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.listAllProductsFn(ctx)
}
func (m *mockCatalogService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return m.getProductFn(ctx, id)
}
func (m *mockCatalogService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.createProductFn(ctx, product)
}
func (m *mockCatalogService) UpdateProduct(ctx context.Context, update models.ProductUpdate) (models.Product, error) {
	return m.updateProductFn(ctx, update)
}
func (m *mockCatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return m.deleteProductFn(ctx, id)
}
func (m *mockCatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.listCategoriesFn(ctx)
}
func (m *mockCatalogService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.createCategoryFn(ctx, category)
}
func (m *mockCatalogService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.updateCategoryFn(ctx, category)
}
func (m *mockCatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return m.deleteCategoryFn(ctx, id)
}

type mockContentService struct {
	getFn func(ctx context.Context, contentType string) (models.SiteContent, error)
	putFn func(ctx context.Context, contentType string, doc models.Document) (models.SiteContent, error)
}

func (m *mockContentService) Get(ctx context.Context, contentType string) (models.SiteContent, error) {
	return m.getFn(ctx, contentType)
}
func (m *mockContentService) Put(ctx context.Context, contentType string, doc models.Document) (models.SiteContent, error) {
	return m.putFn(ctx, contentType, doc)
}

type mockEmailService struct {
	createTemplateFn func(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	getTemplateFn    func(ctx context.Context, id int64) (models.EmailTemplate, error)
	listTemplatesFn  func(ctx context.Context) ([]models.EmailTemplate, error)
	updateTemplateFn func(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error)
	deleteTemplateFn func(ctx context.Context, id int64) error
	sendFn           func(ctx context.Context, input service.SendInput) (models.EmailLog, error)
	listLogsFn       func(ctx context.Context, limit uint64) ([]models.EmailLog, error)
}

func (m *mockEmailService) CreateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	return m.createTemplateFn(ctx, tpl)
}
func (m *mockEmailService) GetTemplate(ctx context.Context, id int64) (models.EmailTemplate, error) {
	return m.getTemplateFn(ctx, id)
}
func (m *mockEmailService) ListTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	return m.listTemplatesFn(ctx)
}
func (m *mockEmailService) UpdateTemplate(ctx context.Context, tpl models.EmailTemplate) (models.EmailTemplate, error) {
	return m.updateTemplateFn(ctx, tpl)
}
func (m *mockEmailService) DeleteTemplate(ctx context.Context, id int64) error {
	return m.deleteTemplateFn(ctx, id)
}
func (m *mockEmailService) Send(ctx context.Context, input service.SendInput) (models.EmailLog, error) {
	return m.sendFn(ctx, input)
}
func (m *mockEmailService) ListLogs(ctx context.Context, limit uint64) ([]models.EmailLog, error) {
	return m.listLogsFn(ctx, limit)
}

type mockMediaService struct {
	saveUploadFn func(ctx context.Context, input service.UploadInput) (models.MediaFile, error)
	listFilesFn  func(ctx context.Context) ([]models.MediaFile, error)
	deleteFileFn func(ctx context.Context, filename string) error
}

func (m *mockMediaService) SaveUpload(ctx context.Context, input service.UploadInput) (models.MediaFile, error) {
	return m.saveUploadFn(ctx, input)
}
func (m *mockMediaService) ListFiles(ctx context.Context) ([]models.MediaFile, error) {
	return m.listFilesFn(ctx)
}
func (m *mockMediaService) DeleteFile(ctx context.Context, filename string) error {
	return m.deleteFileFn(ctx, filename)
}

type mockPinger struct {
	err error
}

func (m *mockPinger) PingContext(_ context.Context) error {
	return m.err
}

// newTestHandler builds a Handler over the given mocks; nil mocks stay nil
// and any route touching them would panic, surfacing unexpected calls.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, &mockPinger{}, t.TempDir(), logger.Nop())
}
