package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newOrderService(c *mockCustomerRepo, o *mockOrderRepo) services.OrderService {
	logger, _ := zap.NewDevelopment()
	repos := newTestRepos(c, nil, nil, o)
	return services.NewOrderService(repos, &fakeTxManager{repos: repos}, logger)
}

func TestCreateOrder_CustomerMissing(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(&mockCustomerRepo{exists: false}, orders)

	order, svcErr := svc.CreateOrder(context.Background(), 42, &models.OrderRequest{
		Date: "2019-06-01", Reference: "ORD010",
	})
	assert.Nil(t, order)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Equal(t, "Customer does not exist", svcErr.Message)
	assert.Nil(t, orders.created)
}

func TestCreateOrder_Success(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(&mockCustomerRepo{exists: true}, orders)

	order, svcErr := svc.CreateOrder(context.Background(), 1, &models.OrderRequest{
		Date: "2019-06-01", Reference: "ORD010",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, uint(1), order.CustomerID)
	assert.Equal(t, "ORD010", order.OrderReference)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), order.OrderDate)
}

func TestCreateOrder_RFC3339DateAccepted(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(&mockCustomerRepo{exists: true}, orders)

	order, svcErr := svc.CreateOrder(context.Background(), 1, &models.OrderRequest{
		Date: "2019-06-01T10:30:00Z", Reference: "ORD011",
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, 2019, order.OrderDate.Year())
}

func TestCreateOrder_BadDate(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(&mockCustomerRepo{exists: true}, orders)

	order, svcErr := svc.CreateOrder(context.Background(), 1, &models.OrderRequest{
		Date: "01/06/2019", Reference: "ORD012",
	})
	assert.Nil(t, order)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Nil(t, orders.created)
}

func TestCreateOrder_EmptyReference(t *testing.T) {
	orders := &mockOrderRepo{}
	svc := newOrderService(&mockCustomerRepo{exists: true}, orders)

	_, svcErr := svc.CreateOrder(context.Background(), 1, &models.OrderRequest{
		Date: "2019-06-01", Reference: "  ",
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
	assert.Nil(t, orders.created)
}

func TestDeleteOrder_ItemsRemovedBeforeOrder(t *testing.T) {
	orders := &mockOrderRepo{itemsDeleted: 3, deleteAffected: 1}
	svc := newOrderService(&mockCustomerRepo{}, orders)

	svcErr := svc.DeleteOrder(context.Background(), 7)
	assert.Nil(t, svcErr)
	assert.Equal(t, []string{"items", "order"}, orders.calls)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	orders := &mockOrderRepo{itemsDeleted: 0, deleteAffected: 0}
	svc := newOrderService(&mockCustomerRepo{}, orders)

	svcErr := svc.DeleteOrder(context.Background(), 123)
	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestListCustomerOrders_Success(t *testing.T) {
	orders := &mockOrderRepo{
		rows: []models.CustomerOrderRow{
			{OrderReference: "ORD001", ProductName: "Coffee Cup", UnitPrice: 4.5, SupplierName: "Sainsburys", Quantity: 2},
			{OrderReference: "ORD001", ProductName: "Ball", UnitPrice: 15.0, SupplierName: "Argos", Quantity: 1},
		},
	}
	svc := newOrderService(&mockCustomerRepo{}, orders)

	rows, svcErr := svc.ListCustomerOrders(context.Background(), 1)
	assert.Nil(t, svcErr)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Coffee Cup", rows[0].ProductName)
}
