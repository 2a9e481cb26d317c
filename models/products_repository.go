package models

import (
	"errors"

	"gorm.io/gorm"
)

type ProductsRepository struct {
	db *gorm.DB
}

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

func NewProductsRepository(db *gorm.DB) *ProductsRepository {
	return &ProductsRepository{
		db: db,
	}
}

func (r *ProductsRepository) GetAllProducts() ([]Product, error) {
	var products []Product
	if err := r.db.
		Preload("PriceHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("Alerts").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductsRepository) GetByID(id uint) (*Product, error) {
	var product Product
	if err := r.db.
		Preload("PriceHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("timestamp ASC")
		}).
		Preload("Alerts").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err // Other DB error
	}
	return &product, nil
}

// CreateProduct inserts the product together with any attached history rows.
func (r *ProductsRepository) CreateProduct(product *Product) error {
	return r.db.Create(product).Error
}

// UpdateProduct persists field changes on an already loaded product.
func (r *ProductsRepository) UpdateProduct(product *Product) error {
	return r.db.Omit("PriceHistory", "Alerts").Save(product).Error
}

// DeleteProduct removes the product and, in the same transaction, its
// history and alerts. SQLite runs without foreign key enforcement by
// default, so the cascade is done explicitly rather than left to the
// schema constraint.
func (r *ProductsRepository) DeleteProduct(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&Product{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
		if err := tx.Where("product_id = ?", id).Delete(&PriceRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("product_id = ?", id).Delete(&Alert{}).Error
	})
}

// GetPriceHistory returns the product's records in non-decreasing
// timestamp order, or ErrProductNotFound for an unknown product.
func (r *ProductsRepository) GetPriceHistory(productID uint) ([]PriceRecord, error) {
	var count int64
	if err := r.db.Model(&Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrProductNotFound
	}

	var records []PriceRecord
	if err := r.db.
		Where("product_id = ?", productID).
		Order("timestamp ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *ProductsRepository) AddPriceRecord(record *PriceRecord) error {
	return r.db.Create(record).Error
}
