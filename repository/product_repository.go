package repository

import (
	"context"

	"github.com/Moonia9/Databases-Homework/models"

	"gorm.io/gorm"
)

// ProductRepository defines data-access operations for products.
type ProductRepository interface {
	FindAllWithSupplier(ctx context.Context, nameFilter string) ([]models.ProductWithSupplier, error)
	Create(ctx context.Context, product *models.Product) error
}

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository.
func NewGormProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// FindAllWithSupplier lists products joined with their supplier's name.
// A non-empty nameFilter narrows the list to products whose name contains it
// as a case-sensitive substring. The filter is always bound as a query
// parameter; it must never be spliced into the SQL text.
func (r *GormProductRepository) FindAllWithSupplier(ctx context.Context, nameFilter string) ([]models.ProductWithSupplier, error) {
	query := r.db.WithContext(ctx).
		Table("products AS p").
		Select("p.id, p.product_name, p.price, s.supplier_name").
		Joins("INNER JOIN suppliers s ON s.id = p.supplier_id").
		Order("p.id")

	if nameFilter != "" {
		query = query.Where("p.product_name LIKE ?", "%"+nameFilter+"%")
	}

	var products []models.ProductWithSupplier
	if err := query.Scan(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}
