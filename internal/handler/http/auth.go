package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
)

// loginResponse is the body of successful register/login calls.
type loginResponse struct {
	User      models.User `json:"user"`
	Token     string      `json:"token,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	user, err := h.services.Auth.Register(ctx, input)
	if err != nil {
		log.Err(err).Msg("registration failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, loginResponse{User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrInvalidCredentials)
		return
	}

	user, session, err := h.services.Auth.Login(ctx, input.Email, input.Password)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("login failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, loginResponse{
		User:      user,
		Token:     session.Token,
		ExpiresAt: &session.ExpiresAt,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, _ := utils.GetSessionTokenFromContext(ctx)
	if err := h.services.Auth.Logout(ctx, token); err != nil {
		log.Err(err).Msg("logout failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "logged out"}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.Auth.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.AdminUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	user, err := h.services.Auth.CreateUser(ctx, input)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	var input service.AdminUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, service.ErrMissingFields)
		return
	}

	actor, _ := utils.GetUserFromContext(ctx)
	user, err := h.services.Auth.UpdateUser(ctx, actor, id, input)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, service.ErrMissingFields)
		return
	}

	actor, _ := utils.GetUserFromContext(ctx)
	if err := h.services.Auth.DeleteUser(ctx, actor, id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
