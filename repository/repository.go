package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles the per-entity repositories over a single gorm handle,
// so a transaction can hand the service layer the same set bound to the tx.
type Repositories struct {
	Customers CustomerRepository
	Suppliers SupplierRepository
	Products  ProductRepository
	Orders    OrderRepository
}

// NewRepositories builds the GORM-backed repository set for db, which may be
// either the shared pool or an open transaction.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Customers: NewGormCustomerRepository(db),
		Suppliers: NewGormSupplierRepository(db),
		Products:  NewGormProductRepository(db),
		Orders:    NewGormOrderRepository(db),
	}
}

// TxManager runs a function over a repository set inside one database
// transaction. Check-then-act sequences (existence check followed by a write)
// go through here so the check and the write cannot interleave with a
// concurrent mutation.
type TxManager interface {
	InTx(ctx context.Context, fn func(r *Repositories) error) error
}

// GormTxManager implements TxManager on top of gorm's Transaction helper:
// the closure's error rolls the transaction back, nil commits it.
type GormTxManager struct {
	db *gorm.DB
}

// NewGormTxManager creates a new GormTxManager.
func NewGormTxManager(db *gorm.DB) TxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) InTx(ctx context.Context, fn func(r *Repositories) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
