package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/seznam/internal/model"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps a domain error to its status code. Errors without a
// mapping are logged and reported as internal.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrAuthRequired):
		jsonError(w, http.StatusUnauthorized, "not authenticated")
	case errors.Is(err, model.ErrAccountNotFound), errors.Is(err, model.ErrWrongPassword):
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrForbidden):
		jsonError(w, http.StatusForbidden, "list belongs to another account")
	case errors.Is(err, model.ErrNotFound):
		jsonError(w, http.StatusNotFound, "list not found")
	case errors.Is(err, model.ErrDuplicateEmail):
		jsonError(w, http.StatusConflict, "email already registered")
	default:
		slog.Error("request failed", "op", op, "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
