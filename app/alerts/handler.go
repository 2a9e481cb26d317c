package alerts

import (
	"net/http"
	"time"

	"github.com/pricesense/backend/models"
	"github.com/pricesense/backend/pkg/httpx"
	"github.com/pricesense/backend/pkg/logx"
)

type AlertResponse struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	Price       float64   `json:"price"`
	TriggeredAt time.Time `json:"triggered_at"`
	Message     *string   `json:"message"`
}

type AlertProvider interface {
	GetAllAlerts() ([]models.Alert, error)
}

type AlertsHandler struct {
	repo AlertProvider
}

func NewAlertsHandler(r AlertProvider) *AlertsHandler {
	return &AlertsHandler{repo: r}
}

// HandleGetAll returns every alert, newest first.
func (h *AlertsHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.repo.GetAllAlerts()
	if err != nil {
		logx.Error().Err(err).Msg("list alerts")
		httpx.WriteError(w, http.StatusInternalServerError, "failed to fetch alerts")
		return
	}

	response := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		response[i] = AlertResponse{
			ID:          a.ID,
			ProductID:   a.ProductID,
			Price:       a.Price.InexactFloat64(),
			TriggeredAt: a.TriggeredAt,
			Message:     a.Message,
		}
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}
