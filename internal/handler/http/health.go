package http

import (
	"net/http"

	"todokeeper/internal/logger"
	"todokeeper/internal/utils"
	"todokeeper/models"
)

// health reports API liveness and database connectivity.
// Responds 503 when the database does not answer a ping.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.db.PingContext(r.Context()); err != nil {
		log.Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
		}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}, http.StatusOK)
}
