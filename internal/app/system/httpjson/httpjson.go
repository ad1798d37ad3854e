// internal/app/system/httpjson/httpjson.go
//
// Helpers for the JSON request/response surface. Error bodies use the
// {"detail": "..."} shape the frontend already consumes.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, detail string) {
	Respond(w, status, map[string]string{"detail": detail})
}

// Decode reads the request body into dst. On failure it writes a 400
// response and returns false; the handler should return immediately.
func Decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		Error(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
