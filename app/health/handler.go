package health

import (
	"net/http"

	"github.com/pricesense/backend/pkg/httpx"
)

// Handle reports service health. No side effects.
func Handle(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Healthy"})
}
