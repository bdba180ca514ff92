package handler

import (
	"net/http"

	"hrms.service/internal/core"
)

type DashboardHandler struct {
	Service *core.DashboardService
}

// Get handles GET /api/dashboard. The snapshot is recomputed on every
// request.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Service.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, snapshot)
}
