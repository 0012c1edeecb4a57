package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
)

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	templates, err := h.services.Email.ListTemplates(ctx)
	if err != nil {
		log.Err(err).Msg("template listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, templates, http.StatusOK)
}

func (h *Handler) getTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	tpl, err := h.services.Email.GetTemplate(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("template lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, tpl, http.StatusOK)
}

func (h *Handler) createTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var tpl models.EmailTemplate
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	created, err := h.services.Email.CreateTemplate(ctx, tpl)
	if err != nil {
		log.Err(err).Msg("template creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	var tpl models.EmailTemplate
	if err := json.NewDecoder(r.Body).Decode(&tpl); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}
	tpl.ID = id

	updated, err := h.services.Email.UpdateTemplate(ctx, tpl)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("template update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteTemplate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	if err := h.services.Email.DeleteTemplate(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("template deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

func (h *Handler) sendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.SendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	entry, err := h.services.Email.Send(ctx, input)
	if err != nil {
		log.Err(err).Msg("email dispatch failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) listEmailLogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, service.ErrMissingFields)
			return
		}
		limit = parsed
	}

	logs, err := h.services.Email.ListLogs(ctx, limit)
	if err != nil {
		log.Err(err).Msg("dispatch log listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, logs, http.StatusOK)
}

// Email settings are one more content document; dedicated routes keep the
// management surface symmetric with the original API.

func (h *Handler) getEmailSettings(w http.ResponseWriter, r *http.Request) {
	h.serveContent(w, r, service.ContentEmail)
}

func (h *Handler) putEmailSettings(w http.ResponseWriter, r *http.Request) {
	h.storeContent(w, r, service.ContentEmail)
}
