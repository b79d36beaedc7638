package services_test

import (
	"context"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/repository"
)

// ---- mock customer repository ----

type mockCustomerRepo struct {
	customers      []models.Customer
	findAllErr     error
	customer       *models.Customer
	findByIDErr    error
	exists         bool
	existsErr      error
	created        *models.Customer
	createErr      error
	updateAffected int64
	updateErr      error
	deleteAffected int64
	deleteErr      error
	deleted        bool
}

func (m *mockCustomerRepo) FindAll(_ context.Context) ([]models.Customer, error) {
	return m.customers, m.findAllErr
}
func (m *mockCustomerRepo) FindByID(_ context.Context, _ uint) (*models.Customer, error) {
	return m.customer, m.findByIDErr
}
func (m *mockCustomerRepo) Exists(_ context.Context, _ uint) (bool, error) {
	return m.exists, m.existsErr
}
func (m *mockCustomerRepo) Create(_ context.Context, c *models.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	c.ID = 1
	m.created = c
	return nil
}
func (m *mockCustomerRepo) Update(_ context.Context, _ *models.Customer) (int64, error) {
	return m.updateAffected, m.updateErr
}
func (m *mockCustomerRepo) Delete(_ context.Context, _ uint) (int64, error) {
	m.deleted = true
	return m.deleteAffected, m.deleteErr
}

// ---- mock supplier repository ----

type mockSupplierRepo struct {
	suppliers  []models.Supplier
	findAllErr error
	exists     bool
	existsErr  error
}

func (m *mockSupplierRepo) FindAll(_ context.Context) ([]models.Supplier, error) {
	return m.suppliers, m.findAllErr
}
func (m *mockSupplierRepo) Exists(_ context.Context, _ uint) (bool, error) {
	return m.exists, m.existsErr
}

// ---- mock product repository ----

type mockProductRepo struct {
	products   []models.ProductWithSupplier
	findAllErr error
	filterSeen string
	created    *models.Product
	createErr  error
}

func (m *mockProductRepo) FindAllWithSupplier(_ context.Context, nameFilter string) ([]models.ProductWithSupplier, error) {
	m.filterSeen = nameFilter
	return m.products, m.findAllErr
}
func (m *mockProductRepo) Create(_ context.Context, p *models.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	p.ID = 1
	m.created = p
	return nil
}

// ---- mock order repository ----

type mockOrderRepo struct {
	created         *models.Order
	createErr       error
	orderCount      int64
	countErr        error
	itemsDeleted    int64
	deleteItemsErr  error
	deleteAffected  int64
	deleteErr       error
	rows            []models.CustomerOrderRow
	findRowsErr     error
	calls           []string // records write ordering: "items" then "order"
}

func (m *mockOrderRepo) Create(_ context.Context, o *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	o.ID = 1
	m.created = o
	return nil
}
func (m *mockOrderRepo) CountByCustomer(_ context.Context, _ uint) (int64, error) {
	return m.orderCount, m.countErr
}
func (m *mockOrderRepo) DeleteItemsByOrder(_ context.Context, _ uint) (int64, error) {
	m.calls = append(m.calls, "items")
	return m.itemsDeleted, m.deleteItemsErr
}
func (m *mockOrderRepo) Delete(_ context.Context, _ uint) (int64, error) {
	m.calls = append(m.calls, "order")
	return m.deleteAffected, m.deleteErr
}
func (m *mockOrderRepo) FindCustomerOrderItems(_ context.Context, _ uint) ([]models.CustomerOrderRow, error) {
	return m.rows, m.findRowsErr
}

// ---- fake transaction manager ----

// fakeTxManager just invokes the closure over the mock repository set; an
// error from the closure is returned as the rolled-back transaction's error.
type fakeTxManager struct {
	repos    *repository.Repositories
	beginErr error
}

func (f *fakeTxManager) InTx(_ context.Context, fn func(r *repository.Repositories) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(f.repos)
}

func newTestRepos(c *mockCustomerRepo, s *mockSupplierRepo, p *mockProductRepo, o *mockOrderRepo) *repository.Repositories {
	if c == nil {
		c = &mockCustomerRepo{}
	}
	if s == nil {
		s = &mockSupplierRepo{}
	}
	if p == nil {
		p = &mockProductRepo{}
	}
	if o == nil {
		o = &mockOrderRepo{}
	}
	return &repository.Repositories{
		Customers: c,
		Suppliers: s,
		Products:  p,
		Orders:    o,
	}
}
