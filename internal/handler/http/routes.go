package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the full route surface. Three tiers: public storefront reads,
// authenticated session routes, and the admin-gated management surface.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// public routes
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{id}", h.getProduct)
		r.Get("/api/categories", h.listCategories)

		r.Get("/api/homepage", h.getHomepage)
		r.Get("/api/content/{type}", h.getContent)

		r.Get("/api/ping", h.ping)
		r.Get("/api/health", h.health)
	})

	// authenticated routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Post("/api/upload/single", h.uploadSingle)
		r.Post("/api/upload/multiple", h.uploadMultiple)
		r.Get("/api/upload/list", h.listUploads)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.adminOnly)

		r.Get("/api/auth/users", h.listUsers)
		r.Post("/api/auth/users", h.createUser)
		r.Put("/api/auth/users/{id}", h.updateUser)
		r.Delete("/api/auth/users/{id}", h.deleteUser)

		r.Get("/api/products/admin/all", h.listAllProducts)
		r.Post("/api/products", h.createProduct)
		r.Put("/api/products/{id}", h.updateProduct)
		r.Delete("/api/products/{id}", h.deleteProduct)

		r.Post("/api/categories", h.createCategory)
		r.Put("/api/categories/{id}", h.updateCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)

		r.Put("/api/homepage", h.putHomepage)
		r.Put("/api/content/{type}", h.putContent)

		r.Get("/api/email/templates", h.listTemplates)
		r.Post("/api/email/templates", h.createTemplate)
		r.Get("/api/email/templates/{id}", h.getTemplate)
		r.Put("/api/email/templates/{id}", h.updateTemplate)
		r.Delete("/api/email/templates/{id}", h.deleteTemplate)
		r.Post("/api/email/send", h.sendEmail)
		r.Get("/api/email/logs", h.listEmailLogs)
		r.Get("/api/email/settings", h.getEmailSettings)
		r.Put("/api/email/settings", h.putEmailSettings)

		r.Delete("/api/upload/{filename}", h.deleteUpload)
	})

	// uploaded blobs are public once stored
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir))))

	return router
}
