// Package handlers implements the HTTP JSON API: story publishing and
// queries, like toggling, bookmarks, and the supplemental auth endpoints.
// Handlers validate input, call the stores, and translate store results
// into status codes — orchestration lives here, atomicity lives in SQL.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// respondMessage writes the API's {"message": …} envelope used for every
// non-2xx outcome and for acknowledgments.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondInternal logs the underlying error with context and returns a
// generic 500 — internals never leak to the caller.
func respondInternal(w http.ResponseWriter, context string, err error) {
	slog.Error(context, "error", err)
	respondMessage(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

// decodeJSON parses the request body into dst. Returns false (after
// responding 400) if the body is not valid JSON for dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
