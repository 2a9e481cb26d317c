package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a tracked item whose price is monitored over time.
// It carries its full price history and any alerts raised for it.
type Product struct {
	ID           uint             `gorm:"primaryKey"`
	Name         string           `gorm:"size:255;not null"`
	URL          *string          `gorm:"size:1024;uniqueIndex"`
	CurrentPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	LastChecked  time.Time        `gorm:"not null;index"`

	PriceHistory []PriceRecord `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Alerts       []Alert       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (p *Product) TableName() string {
	return "products"
}
