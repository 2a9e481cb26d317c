package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pricesense/backend/models"
	"github.com/pricesense/backend/pkg/logx"
)

type ProductStore interface {
	GetAllProducts() ([]models.Product, error)
	UpdateProduct(product *models.Product) error
	AddPriceRecord(record *models.PriceRecord) error
}

type AlertStore interface {
	CreateAlert(alert *models.Alert) error
}

// Result summarizes one fetch pass.
type Result struct {
	Processed     int `json:"processed"`
	Updated       int `json:"updated"`
	AlertsCreated int `json:"alerts_created"`
}

// Service refreshes product prices. The fetch itself is a stub that
// derives a pseudo-price from the product id and the clock; a real
// scraper or provider API would slot in behind FetchLatestPrice.
type Service struct {
	products ProductStore
	alerts   AlertStore
	now      func() time.Time
}

func NewService(products ProductStore, alerts AlertStore) *Service {
	return &Service{
		products: products,
		alerts:   alerts,
		now:      time.Now,
	}
}

// FetchLatestPrice returns the current price for a product. Bounded
// drift around the last known price (50.00 when none), blended with an
// id-derived base so distinct products get distinct prices.
func (s *Service) FetchLatestPrice(p *models.Product) decimal.Decimal {
	id := p.ID
	if id == 0 {
		id = 1
	}
	base := float64(id) * 1.11

	current := 50.0
	if p.CurrentPrice != nil {
		current = p.CurrentPrice.InexactFloat64()
	}
	minuteFactor := float64(s.now().UTC().Minute()%10) * 0.25
	computed := current * (0.98 + minuteFactor/100.0)

	return decimal.NewFromFloat((computed + base) / 2.0).Round(2)
}

// FetchLatest runs one pass over all products: fetch the latest price,
// and when it differs from the known one, update the product, append a
// history record, and raise an alert if a new historical low was hit.
func (s *Service) FetchLatest() (Result, error) {
	products, err := s.products.GetAllProducts()
	if err != nil {
		return Result{}, fmt.Errorf("load products: %w", err)
	}

	res := Result{Processed: len(products)}
	for i := range products {
		p := &products[i]

		latest := s.FetchLatestPrice(p)
		if p.CurrentPrice != nil && latest.Equal(*p.CurrentPrice) {
			continue
		}

		// Historical low is judged against what was known before this
		// observation.
		lowest, hasLowest := lowestKnownPrice(p)

		now := s.now().UTC()
		p.CurrentPrice = &latest
		p.LastChecked = now
		if err := s.products.UpdateProduct(p); err != nil {
			logx.Error().Err(err).Uint("product_id", p.ID).Msg("pricing: update product")
			continue
		}
		if err := s.products.AddPriceRecord(&models.PriceRecord{
			ProductID: p.ID,
			Price:     latest,
			Timestamp: now,
		}); err != nil {
			logx.Error().Err(err).Uint("product_id", p.ID).Msg("pricing: append price record")
			continue
		}
		res.Updated++

		if !hasLowest || latest.LessThan(lowest) {
			message := fmt.Sprintf("New lowest price detected: %s", latest.StringFixed(2))
			if err := s.alerts.CreateAlert(&models.Alert{
				ProductID:   p.ID,
				Price:       latest,
				TriggeredAt: now,
				Message:     &message,
			}); err != nil {
				logx.Error().Err(err).Uint("product_id", p.ID).Msg("pricing: create alert")
				continue
			}
			res.AlertsCreated++
		}
	}

	return res, nil
}

func lowestKnownPrice(p *models.Product) (decimal.Decimal, bool) {
	var lowest decimal.Decimal
	found := false
	for _, rec := range p.PriceHistory {
		if !found || rec.Price.LessThan(lowest) {
			lowest = rec.Price
			found = true
		}
	}
	if p.CurrentPrice != nil && (!found || p.CurrentPrice.LessThan(lowest)) {
		lowest = *p.CurrentPrice
		found = true
	}
	return lowest, found
}
