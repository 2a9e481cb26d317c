package models

import (
	"gorm.io/gorm"
)

type AlertsRepository struct {
	db *gorm.DB
}

func NewAlertsRepository(db *gorm.DB) *AlertsRepository {
	return &AlertsRepository{
		db: db,
	}
}

// GetAllAlerts returns every alert, newest first.
func (r *AlertsRepository) GetAllAlerts() ([]Alert, error) {
	var alerts []Alert
	if err := r.db.Order("triggered_at DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *AlertsRepository) CreateAlert(alert *Alert) error {
	return r.db.Create(alert).Error
}
