package http

import (
	"net/http"

	"github.com/MKhiriev/go-post-board/internal/utils"
	"github.com/MKhiriev/go-post-board/models"
)

// health answers readiness probes. It pings the database through the shared
// connection pool so an unreachable storage backend is reported before any
// traffic depends on it.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		respondError(w, r, err, "database is unreachable")
		return
	}

	utils.WriteJSON(w, models.NewSuccessResponse("service is healthy"), http.StatusOK)
}
