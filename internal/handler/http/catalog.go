package http

import (
	"encoding/json"
	"net/http"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, err := h.services.Catalog.ListProducts(ctx)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) listAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, err := h.services.Catalog.ListAllProducts(ctx)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	product, err := h.services.Catalog.GetProduct(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("product lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	created, err := h.services.Catalog.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Msg("product creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}
	update.ID = id

	updated, err := h.services.Catalog.UpdateProduct(ctx, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("product update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	if err := h.services.Catalog.DeleteProduct(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("product deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	categories, err := h.services.Catalog.ListCategories(ctx)
	if err != nil {
		log.Err(err).Msg("category listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	created, err := h.services.Catalog.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Msg("category creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}
	category.ID = id

	updated, err := h.services.Catalog.UpdateCategory(ctx, category)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("category update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	if err := h.services.Catalog.DeleteCategory(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("category deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
