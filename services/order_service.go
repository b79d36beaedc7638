package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/repository"

	"go.uber.org/zap"
)

var (
	errOrderCustomerMissing = errors.New("customer does not exist")
	errOrderNotFound        = errors.New("order not found")
)

// orderDateLayouts are the accepted formats for the create-order date field.
var orderDateLayouts = []string{"2006-01-02", time.RFC3339}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, customerID uint, req *models.OrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, orderID uint) *ServiceError
	ListCustomerOrders(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, *ServiceError)
}

type orderServiceImpl struct {
	repos  *repository.Repositories
	tx     repository.TxManager
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repos *repository.Repositories, tx repository.TxManager, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repos: repos, tx: tx, logger: logger}
}

// CreateOrder inserts an order for the customer after verifying, in the same
// transaction, that the customer exists.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, customerID uint, req *models.OrderRequest) (*models.Order, *ServiceError) {
	if strings.TrimSpace(req.Reference) == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Please provide an order reference"}
	}
	orderDate, parseErr := parseOrderDate(req.Date)
	if parseErr != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order date, expected YYYY-MM-DD"}
	}

	order := &models.Order{
		OrderDate:      orderDate,
		OrderReference: req.Reference,
		CustomerID:     customerID,
	}
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		exists, err := r.Customers.Exists(ctx, customerID)
		if err != nil {
			return err
		}
		if !exists {
			return errOrderCustomerMissing
		}
		return r.Orders.Create(ctx, order)
	})

	switch {
	case err == nil:
		s.logger.Info("Order created",
			zap.Uint("order_id", order.ID),
			zap.Uint("customer_id", customerID),
		)
		return order, nil
	case errors.Is(err, errOrderCustomerMissing):
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Customer does not exist"}
	default:
		s.logger.Error("Create order failed", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}
}

// DeleteOrder removes the order's items first and the order itself second,
// both inside one transaction, so no orphaned items can survive a partial
// failure.
func (s *orderServiceImpl) DeleteOrder(ctx context.Context, orderID uint) *ServiceError {
	var itemsDeleted int64
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		var err error
		itemsDeleted, err = r.Orders.DeleteItemsByOrder(ctx, orderID)
		if err != nil {
			return err
		}

		affected, err := r.Orders.Delete(ctx, orderID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errOrderNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Order deleted",
			zap.Uint("order_id", orderID),
			zap.Int64("items_deleted", itemsDeleted),
		)
		return nil
	case errors.Is(err, errOrderNotFound):
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	default:
		s.logger.Error("Delete order failed", zap.Uint("order_id", orderID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete order"}
	}
}

func (s *orderServiceImpl) ListCustomerOrders(ctx context.Context, customerID uint) ([]models.CustomerOrderRow, *ServiceError) {
	rows, err := s.repos.Orders.FindCustomerOrderItems(ctx, customerID)
	if err != nil {
		s.logger.Error("List customer orders failed", zap.Uint("customer_id", customerID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load customer orders"}
	}
	return rows, nil
}

func parseOrderDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format %q", raw)
}
