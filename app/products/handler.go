package products

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pricesense/backend/models"
	"github.com/pricesense/backend/pkg/httpx"
	"github.com/pricesense/backend/pkg/logx"
)

type PriceRecord struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"product_id"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

type Alert struct {
	ID          uint      `json:"id"`
	ProductID   uint      `json:"product_id"`
	Price       float64   `json:"price"`
	TriggeredAt time.Time `json:"triggered_at"`
	Message     *string   `json:"message"`
}

type Product struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	URL          *string       `json:"url"`
	CurrentPrice *float64      `json:"current_price"`
	LastChecked  time.Time     `json:"last_checked"`
	PriceHistory []PriceRecord `json:"price_history"`
	Alerts       []Alert       `json:"alerts"`
}

type ProductProvider interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(product *models.Product) error
	DeleteProduct(id uint) error
	GetPriceHistory(productID uint) ([]models.PriceRecord, error)
}

type ProductsHandler struct {
	repo ProductProvider
}

func NewProductsHandler(r ProductProvider) *ProductsHandler {
	return &ProductsHandler{
		repo: r,
	}
}

func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	res, err := h.repo.GetAllProducts()
	if err != nil {
		logx.Error().Err(err).Msg("list products")
		httpx.WriteError(w, http.StatusInternalServerError, "failed to get products")
		return
	}

	response := make([]Product, len(res))
	for i, p := range res {
		response[i] = toProduct(p)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name         string   `json:"name"`
		URL          *string  `json:"url"`
		CurrentPrice *float64 `json:"current_price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if input.Name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Missing product name")
		return
	}

	now := time.Now().UTC()
	product := &models.Product{
		Name:        input.Name,
		URL:         input.URL,
		LastChecked: now,
	}
	if input.CurrentPrice != nil {
		price := decimal.NewFromFloat(*input.CurrentPrice)
		product.CurrentPrice = &price
		// Initial price is also the first history entry.
		product.PriceHistory = []models.PriceRecord{
			{Price: price, Timestamp: now},
		}
	}

	if err := h.repo.CreateProduct(product); err != nil {
		logx.Error().Err(err).Str("name", input.Name).Msg("create product")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProduct(*product))
}

func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logx.Error().Err(err).Uint("id", id).Msg("get product")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProduct(*product))
}

// HandleUpdate serves both PUT and PATCH: provided fields replace the
// stored ones, absent fields are left untouched.
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var input struct {
		Name         *string  `json:"name"`
		URL          *string  `json:"url"`
		CurrentPrice *float64 `json:"current_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logx.Error().Err(err).Uint("id", id).Msg("update product")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve product")
		return
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.URL != nil {
		product.URL = input.URL
	}
	if input.CurrentPrice != nil {
		price := decimal.NewFromFloat(*input.CurrentPrice)
		product.CurrentPrice = &price
	}
	product.LastChecked = time.Now().UTC()

	if err := h.repo.UpdateProduct(product); err != nil {
		logx.Error().Err(err).Uint("id", id).Msg("update product")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProduct(*product))
}

func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.repo.DeleteProduct(id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logx.Error().Err(err).Uint("id", id).Msg("delete product")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	// 204 responses must not carry a body, not even null or {}.
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	records, err := h.repo.GetPriceHistory(id)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		logx.Error().Err(err).Uint("id", id).Msg("get price history")
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve price history")
		return
	}

	response := make([]PriceRecord, len(records))
	for i, rec := range records {
		response[i] = toPriceRecord(rec)
	}
	httpx.WriteJSON(w, http.StatusOK, response)
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

func toProduct(p models.Product) Product {
	history := make([]PriceRecord, len(p.PriceHistory))
	for i, rec := range p.PriceHistory {
		history[i] = toPriceRecord(rec)
	}
	alerts := make([]Alert, len(p.Alerts))
	for i, a := range p.Alerts {
		alerts[i] = Alert{
			ID:          a.ID,
			ProductID:   a.ProductID,
			Price:       a.Price.InexactFloat64(),
			TriggeredAt: a.TriggeredAt,
			Message:     a.Message,
		}
	}

	var currentPrice *float64
	if p.CurrentPrice != nil {
		v := p.CurrentPrice.InexactFloat64()
		currentPrice = &v
	}

	return Product{
		ID:           p.ID,
		Name:         p.Name,
		URL:          p.URL,
		CurrentPrice: currentPrice,
		LastChecked:  p.LastChecked,
		PriceHistory: history,
		Alerts:       alerts,
	}
}

func toPriceRecord(rec models.PriceRecord) PriceRecord {
	return PriceRecord{
		ID:        rec.ID,
		ProductID: rec.ProductID,
		Price:     rec.Price.InexactFloat64(),
		Timestamp: rec.Timestamp,
	}
}
