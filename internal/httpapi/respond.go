// Package httpapi exposes the note-keeping REST API handlers.
package httpapi

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// messageResponse is the plain confirmation/error body.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures are
// ignored at this point; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage writes a {"message": ...} body with the given status.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
