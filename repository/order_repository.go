package repository

import (
	"context"

	"github.com/Moonia9/Databases-Homework/models"

	"gorm.io/gorm"
)

// OrderRepository defines data-access operations for orders and their items.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	CountByCustomer(ctx context.Context, customerID uint) (int64, error)
	DeleteItemsByOrder(ctx context.Context, orderID uint) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
	FindCustomerOrderItems(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, error)
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *GormOrderRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	return count, err
}

// DeleteItemsByOrder removes the order's items. Callers delete items before
// the order itself so no orphaned rows survive.
func (r *GormOrderRepository) DeleteItemsByOrder(ctx context.Context, orderID uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&models.OrderItem{}, "order_id = ?", orderID)
	return tx.RowsAffected, tx.Error
}

func (r *GormOrderRepository) Delete(ctx context.Context, id uint) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&models.Order{}, "id = ?", id)
	return tx.RowsAffected, tx.Error
}

// FindCustomerOrderItems returns one row per order item across every order
// belonging to the customer, joined out to product and supplier names.
func (r *GormOrderRepository) FindCustomerOrderItems(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, error) {
	var rows []models.CustomerOrderRow
	err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.order_reference, o.order_date, p.product_name, oi.unit_price, s.supplier_name, oi.quantity").
		Joins("JOIN order_items oi ON oi.order_id = o.id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Joins("JOIN suppliers s ON s.id = p.supplier_id").
		Where("o.customer_id = ?", customerID).
		Order("o.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
