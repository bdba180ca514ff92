package handler

import (
	"encoding/json"
	"net/http"

	"hrms.service/internal/core"
	"hrms.service/internal/core/model"
	"hrms.service/internal/metrics"
)

type AttendanceHandler struct {
	Service *core.AttendanceService
	Metrics *metrics.Metrics
}

type markResponse struct {
	model.AttendanceRecord
	Result string `json:"result"`
}

// Mark handles POST /api/attendance. The response carries the stored
// record plus a "created" or "updated" marker.
func (h *AttendanceHandler) Mark(w http.ResponseWriter, r *http.Request) {
	var in core.MarkInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.Service.Mark(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	marker := "updated"
	if result.Created {
		marker = "created"
	}
	if h.Metrics != nil {
		h.Metrics.AttendanceMarks.WithLabelValues(marker).Inc()
	}

	RespondJSON(w, http.StatusOK, markResponse{
		AttendanceRecord: result.Record,
		Result:           marker,
	})
}

// List handles GET /api/attendance with an optional employee_id query
// parameter.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Service.List(r.Context(), r.URL.Query().Get("employee_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, records)
}
