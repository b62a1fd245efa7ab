package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"stockpot/internal/store"
)

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("encoding response", "error", err)
		}
	}
}

// jsonError writes a JSON error response.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// storeError maps store sentinel errors to HTTP status codes. Anything
// unrecognized is an internal error; the caller-visible body stays
// generic while the detail goes to the log.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		jsonError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrInvalidInput):
		jsonError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicateBarcode):
		jsonError(w, http.StatusConflict, "an item with this barcode already exists")
	case errors.Is(err, store.ErrDuplicateEmail):
		jsonError(w, http.StatusConflict, "email already registered")
	default:
		slog.Error("request failed", "error", err)
		jsonError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON decodes a JSON request body into the given target.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// queryDays parses the ?days=N window parameter, falling back to def for
// missing or invalid values.
func queryDays(r *http.Request, def int) int {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return def
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return def
	}
	return days
}
