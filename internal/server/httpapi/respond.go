package httpapi

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes body as a JSON object with the given status code.
func respondJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondError writes the structured error body {message, error}.
func respondError(w http.ResponseWriter, status int, message string, code int) {
	respondJSON(w, status, map[string]any{"message": message, "error": code})
}

// respondKeyError is respondError with the affected key attached, matching
// the data-route error shape {message, error, key}.
func respondKeyError(w http.ResponseWriter, status int, message string, code int, key string) {
	respondJSON(w, status, map[string]any{"message": message, "error": code, "key": key})
}
