package repository

import (
	"context"

	"github.com/Moonia9/Databases-Homework/models"

	"gorm.io/gorm"
)

// SupplierRepository defines data-access operations for suppliers. The API
// never writes suppliers, so reads are all it needs.
type SupplierRepository interface {
	FindAll(ctx context.Context) ([]models.Supplier, error)
	Exists(ctx context.Context, id uint) (bool, error)
}

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository.
func NewGormSupplierRepository(db *gorm.DB) SupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.WithContext(ctx).Order("id").Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *GormSupplierRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
