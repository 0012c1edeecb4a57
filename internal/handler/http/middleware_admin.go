package http

import (
	"net/http"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/utils"
)

// adminOnly gates the management surface. It must run after auth; a request
// whose context carries no user, or a user without the admin role, is
// rejected with 403.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		user, ok := utils.GetUserFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			log.Warn().Int64("id", user.ID).Msg("admin route rejected")
			utils.WriteJSON(w, errorBody{Error: ErrAdminRequired.Error()}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
