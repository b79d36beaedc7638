package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	errCustomerNotFound  = errors.New("customer not found")
	errCustomerHasOrders = errors.New("customer has orders")
)

// CustomerService defines the business logic interface for customers.
type CustomerService interface {
	List(ctx context.Context) ([]models.Customer, *ServiceError)
	Get(ctx context.Context, id uint) (*models.Customer, *ServiceError)
	Create(ctx context.Context, req *models.CustomerRequest) (*models.Customer, *ServiceError)
	Update(ctx context.Context, id uint, req *models.CustomerRequest) (*models.Customer, *ServiceError)
	Delete(ctx context.Context, id uint) *ServiceError
}

type customerServiceImpl struct {
	repos  *repository.Repositories
	tx     repository.TxManager
	logger *zap.Logger
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repos *repository.Repositories, tx repository.TxManager, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{repos: repos, tx: tx, logger: logger}
}

func (s *customerServiceImpl) List(ctx context.Context) ([]models.Customer, *ServiceError) {
	customers, err := s.repos.Customers.FindAll(ctx)
	if err != nil {
		s.logger.Error("List customers failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load customers"}
	}
	return customers, nil
}

func (s *customerServiceImpl) Get(ctx context.Context, id uint) (*models.Customer, *ServiceError) {
	customer, err := s.repos.Customers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Customer not found"}
		}
		s.logger.Error("Get customer failed", zap.Uint("customer_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load customer"}
	}
	return customer, nil
}

// Create validates the four required fields before anything is written.
// A validation failure returns immediately; the insert never runs.
func (s *customerServiceImpl) Create(ctx context.Context, req *models.CustomerRequest) (*models.Customer, *ServiceError) {
	if svcErr := validateCustomerRequest(req); svcErr != nil {
		return nil, svcErr
	}

	customer := &models.Customer{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}
	if err := s.repos.Customers.Create(ctx, customer); err != nil {
		s.logger.Error("Create customer failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create customer"}
	}

	s.logger.Info("Customer created", zap.Uint("customer_id", customer.ID))
	return customer, nil
}

func (s *customerServiceImpl) Update(ctx context.Context, id uint, req *models.CustomerRequest) (*models.Customer, *ServiceError) {
	if svcErr := validateCustomerRequest(req); svcErr != nil {
		return nil, svcErr
	}

	customer := &models.Customer{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	}
	affected, err := s.repos.Customers.Update(ctx, customer)
	if err != nil {
		s.logger.Error("Update customer failed", zap.Uint("customer_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update customer"}
	}
	if affected == 0 {
		return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Customer not found"}
	}

	return customer, nil
}

// Delete removes a customer only while it has no orders. The guard query and
// the delete run in one transaction so a concurrently created order cannot
// slip between them.
func (s *customerServiceImpl) Delete(ctx context.Context, id uint) *ServiceError {
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		orders, err := r.Orders.CountByCustomer(ctx, id)
		if err != nil {
			return err
		}
		if orders > 0 {
			return errCustomerHasOrders
		}

		affected, err := r.Customers.Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errCustomerNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("Customer deleted", zap.Uint("customer_id", id))
		return nil
	case errors.Is(err, errCustomerHasOrders):
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "This customer has still available orders"}
	case errors.Is(err, errCustomerNotFound):
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Customer not found"}
	default:
		s.logger.Error("Delete customer failed", zap.Uint("customer_id", id), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete customer"}
	}
}

// validateCustomerRequest rejects any empty (or whitespace-only) field.
func validateCustomerRequest(req *models.CustomerRequest) *ServiceError {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.Country) == "" {
		return &ServiceError{
			StatusCode: http.StatusBadRequest,
			Message:    "Please provide the following information: name, address, city and country",
		}
	}
	return nil
}
