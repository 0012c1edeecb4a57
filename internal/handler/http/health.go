package http

import (
	"net/http"

	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/utils"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "pong"}, http.StatusOK)
}

// health reports "ok" when the database answers a ping and "degraded"
// otherwise. Degraded is still a 200: the process serves fallback paths even
// without the database.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := "ok"
	if err := h.db.PingContext(r.Context()); err != nil {
		log.Warn().Err(err).Msg("health check: database unreachable")
		status = "degraded"
	}

	utils.WriteJSON(w, map[string]string{"status": status}, http.StatusOK)
}
