package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"hrms.service/internal/api/handler"
	"hrms.service/internal/metrics"
)

// RouterDeps collects everything the route table needs.
type RouterDeps struct {
	Employees  *handler.EmployeeHandler
	Attendance *handler.AttendanceHandler
	Dashboard  *handler.DashboardHandler
	Metrics    *metrics.Metrics
}

// NewRouter sets up the gorilla/mux router and defines all API routes.
func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	if deps.Metrics != nil {
		api.Use(deps.Metrics.Middleware)
	}

	api.HandleFunc("/employees", deps.Employees.Create).Methods(http.MethodPost)
	api.HandleFunc("/employees", deps.Employees.List).Methods(http.MethodGet)
	api.HandleFunc("/employees/{employeeId}", deps.Employees.Delete).Methods(http.MethodDelete)

	api.HandleFunc("/attendance", deps.Attendance.Mark).Methods(http.MethodPost)
	api.HandleFunc("/attendance", deps.Attendance.List).Methods(http.MethodGet)

	api.HandleFunc("/dashboard", deps.Dashboard.Get).Methods(http.MethodGet)

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		handler.RespondJSON(w, http.StatusOK, map[string]string{"message": "HRMS API"})
	}).Methods(http.MethodGet)

	return r
}
