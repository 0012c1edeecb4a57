package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
)

// The homepage document gets dedicated routes; every other content type goes
// through /api/content/{type}.

func (h *Handler) getHomepage(w http.ResponseWriter, r *http.Request) {
	h.serveContent(w, r, service.ContentHomepage)
}

func (h *Handler) putHomepage(w http.ResponseWriter, r *http.Request) {
	h.storeContent(w, r, service.ContentHomepage)
}

func (h *Handler) getContent(w http.ResponseWriter, r *http.Request) {
	h.serveContent(w, r, chi.URLParam(r, "type"))
}

func (h *Handler) putContent(w http.ResponseWriter, r *http.Request) {
	h.storeContent(w, r, chi.URLParam(r, "type"))
}

func (h *Handler) serveContent(w http.ResponseWriter, r *http.Request, contentType string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	content, err := h.services.Content.Get(ctx, contentType)
	if err != nil {
		log.Err(err).Str("type", contentType).Msg("content read failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, content, http.StatusOK)
}

func (h *Handler) storeContent(w http.ResponseWriter, r *http.Request, contentType string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	content, err := h.services.Content.Put(ctx, contentType, doc)
	if err != nil {
		log.Err(err).Str("type", contentType).Msg("content write failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, content, http.StatusOK)
}
