package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pricesense/backend/models"
)

// --- Mock Stores ---

type MockProductStore struct {
	Products []models.Product
	Err      error

	updates []models.Product
	records []models.PriceRecord
}

func (m *MockProductStore) GetAllProducts() ([]models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Products, nil
}

func (m *MockProductStore) UpdateProduct(product *models.Product) error {
	m.updates = append(m.updates, *product)
	return nil
}

func (m *MockProductStore) AddPriceRecord(record *models.PriceRecord) error {
	m.records = append(m.records, *record)
	return nil
}

type MockAlertStore struct {
	alerts []models.Alert
}

func (m *MockAlertStore) CreateAlert(alert *models.Alert) error {
	m.alerts = append(m.alerts, *alert)
	return nil
}

// fixedClock pins the stub to minute 8, where the drift factor is
// exactly 1.0 and the fetched price is (current + id*1.11) / 2.
var fixedClock = time.Date(2024, 6, 1, 12, 8, 0, 0, time.UTC)

func newTestService(products *MockProductStore, alerts *MockAlertStore) *Service {
	svc := NewService(products, alerts)
	svc.now = func() time.Time { return fixedClock }
	return svc
}

func productWithPrice(id uint, price float64) models.Product {
	d := decimal.NewFromFloat(price)
	return models.Product{
		ID:           id,
		Name:         "Widget",
		CurrentPrice: &d,
	}
}

// --- Tests ---

func TestFetchLatestPriceDeterministic(t *testing.T) {
	svc := newTestService(&MockProductStore{}, &MockAlertStore{})

	p := productWithPrice(1, 50.00)
	first := svc.FetchLatestPrice(&p)
	second := svc.FetchLatestPrice(&p)
	assert.True(t, first.Equal(second), "same inputs must give the same price")
	// (50.00 + 1*1.11) / 2
	assert.Equal(t, "25.56", first.StringFixed(2))

	other := productWithPrice(2, 50.00)
	assert.False(t, first.Equal(svc.FetchLatestPrice(&other)), "distinct products get distinct prices")
}

func TestFetchLatestPriceWithoutKnownPrice(t *testing.T) {
	svc := newTestService(&MockProductStore{}, &MockAlertStore{})

	p := models.Product{ID: 1, Name: "Widget"}
	// Unknown price falls back to 50.00: (50.00 + 1.11) / 2
	assert.Equal(t, "25.56", svc.FetchLatestPrice(&p).StringFixed(2))
}

func TestFetchLatestUpdatesAndAlerts(t *testing.T) {
	p := productWithPrice(1, 50.00)
	p.PriceHistory = []models.PriceRecord{
		{ProductID: 1, Price: decimal.NewFromFloat(48.00)},
	}
	products := &MockProductStore{Products: []models.Product{p}}
	alerts := &MockAlertStore{}
	svc := newTestService(products, alerts)

	result, err := svc.FetchLatest()

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.AlertsCreated, "25.56 undercuts the 48.00 low")

	assert.Len(t, products.updates, 1)
	assert.Equal(t, "25.56", products.updates[0].CurrentPrice.StringFixed(2))
	assert.Equal(t, fixedClock, products.updates[0].LastChecked)

	assert.Len(t, products.records, 1)
	assert.Equal(t, uint(1), products.records[0].ProductID)
	assert.Equal(t, "25.56", products.records[0].Price.StringFixed(2))
	assert.Equal(t, fixedClock, products.records[0].Timestamp)

	assert.Len(t, alerts.alerts, 1)
	assert.Equal(t, "New lowest price detected: 25.56", *alerts.alerts[0].Message)
}

func TestFetchLatestNoAlertAboveKnownLow(t *testing.T) {
	p := productWithPrice(1, 10.00)
	p.PriceHistory = []models.PriceRecord{
		{ProductID: 1, Price: decimal.NewFromFloat(5.00)},
	}
	products := &MockProductStore{Products: []models.Product{p}}
	alerts := &MockAlertStore{}
	svc := newTestService(products, alerts)

	result, err := svc.FetchLatest()

	assert.NoError(t, err)
	// (10.00 + 1.11) / 2 = 5.56, above the recorded 5.00 low.
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.AlertsCreated)
	assert.Len(t, products.records, 1)
	assert.Empty(t, alerts.alerts)
}

func TestFetchLatestFirstObservationAlerts(t *testing.T) {
	// No current price and no history: any observation is a new low.
	products := &MockProductStore{Products: []models.Product{{ID: 1, Name: "Widget"}}}
	alerts := &MockAlertStore{}
	svc := newTestService(products, alerts)

	result, err := svc.FetchLatest()

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.AlertsCreated)
}

func TestFetchLatestSkipsUnchangedPrice(t *testing.T) {
	// 111.00 is the fixed point for product 100 at minute 8:
	// (111.00 + 100*1.11) / 2 = 111.00.
	products := &MockProductStore{Products: []models.Product{productWithPrice(100, 111.00)}}
	alerts := &MockAlertStore{}
	svc := newTestService(products, alerts)

	result, err := svc.FetchLatest()

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Updated)
	assert.Empty(t, products.updates)
	assert.Empty(t, products.records)
	assert.Empty(t, alerts.alerts)
}

func TestFetchLatestStoreError(t *testing.T) {
	products := &MockProductStore{Err: errors.New("db down")}
	svc := newTestService(products, &MockAlertStore{})

	_, err := svc.FetchLatest()

	assert.Error(t, err)
}
