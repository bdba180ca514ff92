package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"hrms.service/internal/core"
	"hrms.service/internal/metrics"
)

type EmployeeHandler struct {
	Service *core.EmployeeService
	Metrics *metrics.Metrics
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in core.CreateEmployeeInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp, err := h.Service.Create(r.Context(), in)
	if err != nil {
		respondError(w, r, err)
		return
	}

	if h.Metrics != nil {
		h.Metrics.EmployeesCreated.Inc()
	}
	RespondJSON(w, http.StatusOK, emp)
}

// List handles GET /api/employees with optional search and department
// query parameters.
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	employees, err := h.Service.List(r.Context(), q.Get("search"), q.Get("department"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, employees)
}

// Delete handles DELETE /api/employees/{employeeId}, cascading into
// the attendance ledger.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	employeeID := mux.Vars(r)["employeeId"]

	if err := h.Service.Delete(r.Context(), employeeID); err != nil {
		respondError(w, r, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
}
