package models

import "time"

// Customer is a buyer with a shipping address. The descriptive fields are all
// required non-empty; a customer can only be deleted while it has no orders.
type Customer struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Address string `gorm:"type:varchar(255);not null" json:"address"`
	City    string `gorm:"type:varchar(100);not null" json:"city"`
	Country string `gorm:"type:varchar(100);not null" json:"country"`
}

// Supplier is read-only in this API; rows are seeded directly in the database.
type Supplier struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SupplierName string `gorm:"type:varchar(100);not null" json:"supplier_name"`
}

// Product references the supplier it is sourced from. The supplier must exist
// at creation time; the check is enforced by the service layer, not a DB
// constraint.
type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	ProductName string  `gorm:"type:varchar(100);not null" json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`
	SupplierID  uint    `gorm:"not null;index" json:"supplier_id"`
}

// Order belongs to a customer, which must exist at creation time.
type Order struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	OrderDate      time.Time `gorm:"not null" json:"order_date"`
	OrderReference string    `gorm:"type:varchar(50);not null" json:"order_reference"`
	CustomerID     uint      `gorm:"not null;index" json:"customer_id"`
}

// OrderItem relates an order to a product. Items are removed before their
// parent order whenever the order is deleted.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	ProductID uint    `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

// CustomerRequest is the payload for creating or updating a customer.
// Presence of the four fields is checked by the service layer so that empty
// strings are rejected before any write happens.
type CustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// ProductRequest is the payload for creating a product.
type ProductRequest struct {
	Name       string  `json:"name" validate:"required"`
	Price      float64 `json:"price"`
	SupplierID uint    `json:"supplierId" validate:"required"`
}

// OrderRequest is the payload for creating an order for a customer.
// Date accepts "2006-01-02" or RFC 3339.
type OrderRequest struct {
	Date      string `json:"date" validate:"required"`
	Reference string `json:"reference" validate:"required"`
}

// ProductWithSupplier is the /products projection: each product paired with
// the name of its supplier.
type ProductWithSupplier struct {
	ID           uint    `json:"id"`
	ProductName  string  `json:"product_name"`
	Price        float64 `json:"price"`
	SupplierName string  `json:"supplier_name"`
}

// CustomerOrderRow is one line of the /customers/:id/orders report: one row
// per order item across all of the customer's orders.
type CustomerOrderRow struct {
	OrderReference string    `json:"order_reference"`
	OrderDate      time.Time `json:"order_date"`
	ProductName    string    `json:"product_name"`
	UnitPrice      float64   `json:"unit_price"`
	SupplierName   string    `json:"supplier_name"`
	Quantity       int       `json:"quantity"`
}
