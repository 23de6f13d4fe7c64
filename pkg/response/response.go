// Package response writes the catalogue API's JSON bodies. The shapes
// are part of the API contract — bare payloads on success and
// {"error": "..."} on failure — so there is no envelope.
package response

import (
	"encoding/json"
	"net/http"
)

// JSON sends v as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Error sends {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// NotFound sends a 404 with the standard product-missing body.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Product not found")
}

// InternalError sends a 500. Store failure detail never reaches the
// caller; it belongs in the logs only.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "Internal server error")
}
