package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is a single timestamped price observation for a product.
// Rows are appended by the fetch job, plus one seed row when a product
// is created with an initial price.
type PriceRecord struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID uint            `gorm:"not null;index:idx_price_records_product_ts"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Timestamp time.Time       `gorm:"not null;index:idx_price_records_product_ts"`
}

func (r *PriceRecord) TableName() string {
	return "price_records"
}
