package http

import (
	"errors"
	"net/http"

	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/store"
	"github.com/heavymart/backend/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:   http.StatusUnauthorized,
	service.ErrUnauthorized:         http.StatusUnauthorized,
	service.ErrInvalidOperation:     http.StatusBadRequest,
	service.ErrMissingFields:        http.StatusBadRequest,
	service.ErrNoRecipients:         http.StatusBadRequest,
	service.ErrMissingContent:       http.StatusBadRequest,
	service.ErrUnknownContentType:   http.StatusNotFound,
	service.ErrCategoryInUse:        http.StatusConflict,
	service.ErrFileTooLarge:         http.StatusBadRequest,
	service.ErrUnsupportedMediaType: http.StatusUnsupportedMediaType,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrCategoryNameTaken:  http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,
	store.ErrProductNotFound:    http.StatusNotFound,
	store.ErrCategoryNotFound:   http.StatusNotFound,
	store.ErrTemplateNotFound:   http.StatusNotFound,
	store.ErrMediaNotFound:      http.StatusNotFound,
	store.ErrContentNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

// statusFromError resolves err against the sentinel map and returns the HTTP
// status together with the matched sentinel. An unmatched error maps to 500
// with a nil sentinel.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// errorBody is the uniform error response shape.
type errorBody struct {
	Error string `json:"error"`
}

// writeError maps err via statusFromError and writes the JSON error body.
// The body carries the matched sentinel's message, never the wrapped chain,
// so storage details do not leak to clients. 500-class errors get the
// generic status text.
func writeError(w http.ResponseWriter, err error) {
	status, sentinel := statusFromError(err)

	msg := http.StatusText(http.StatusInternalServerError)
	if sentinel != nil && status != http.StatusInternalServerError {
		msg = sentinel.Error()
	}

	utils.WriteJSON(w, errorBody{Error: msg}, status)
}
