package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert marks a notification-worthy price event for a product.
type Alert struct {
	ID          uint            `gorm:"primaryKey"`
	ProductID   uint            `gorm:"not null;index:idx_alerts_product_triggered"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	TriggeredAt time.Time       `gorm:"not null;index:idx_alerts_product_triggered"`
	Message     *string         `gorm:"size:512"`
}

func (a *Alert) TableName() string {
	return "alerts"
}
