package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"hrms.service/internal/core"
	"hrms.service/internal/ports/repository"
)

// RespondJSON writes data as a JSON response body.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// respondError maps a service error onto the API's error taxonomy:
// 422 for validation failures, 409 for duplicate business keys, 404
// for absent referenced entities, 500 otherwise.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *core.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusUnprocessableEntity, vErr.Error())
	case errors.Is(err, core.ErrDuplicateEmployeeID):
		writeError(w, http.StatusConflict, "Employee ID already exists")
	case errors.Is(err, core.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, repository.ErrDuplicateKey):
		// Lost a duplicate-check race; the unique index caught it.
		writeError(w, http.StatusConflict, "Employee already exists")
	case errors.Is(err, core.ErrEmployeeNotFound):
		writeError(w, http.StatusNotFound, "Employee not found")
	default:
		log.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	RespondJSON(w, status, map[string]string{"detail": detail})
}
