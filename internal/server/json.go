package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/livinggrainco/site/internal/commission"
	"github.com/livinggrainco/site/internal/wizard"
)

var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// statusFor maps domain errors to response codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, commission.ErrUnknownField),
		errors.Is(err, commission.ErrInvalidValue),
		errors.Is(err, wizard.ErrFieldNotInStep),
		errors.Is(err, wizard.ErrUnknownAction):
		return http.StatusBadRequest
	case errors.Is(err, wizard.ErrStepIncomplete),
		errors.Is(err, wizard.ErrNoActiveStep):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeFailure writes err as a JSON error. Internal errors are logged and
// reported without detail.
func writeFailure(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeError(w, status, "internal error")
		return
	}
	writeError(w, status, err.Error())
}
