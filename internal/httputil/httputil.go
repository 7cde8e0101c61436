// Package httputil provides small JSON helpers shared by all HTTP handlers.
package httputil

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// DecodeLenient decodes the request body into a generic value. Absent or
// malformed bodies are tolerated and yield nil, mirroring how the mock
// settlement endpoints treat input as best-effort.
func DecodeLenient(r *http.Request) any {
	if r.Body == nil {
		return nil
	}
	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil
	}
	return body
}

// RequireMethod writes a 405 response and returns false when the request
// method does not match.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
		return false
	}
	return true
}
