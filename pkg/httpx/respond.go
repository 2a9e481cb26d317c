package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/pricesense/backend/pkg/logx"
)

// WriteJSON encodes v with the given status. Encoding failures are
// logged; by then the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("encode response")
	}
}

// WriteError emits the service-wide {"error": message} shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
