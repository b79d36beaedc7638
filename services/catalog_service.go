package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/repository"

	"go.uber.org/zap"
)

var errSupplierMissing = errors.New("supplier does not exist")

// CatalogService defines the business logic interface for suppliers and
// products.
type CatalogService interface {
	ListSuppliers(ctx context.Context) ([]models.Supplier, *ServiceError)
	ListProducts(ctx context.Context, nameFilter string) ([]models.ProductWithSupplier, *ServiceError)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError)
}

type catalogServiceImpl struct {
	repos  *repository.Repositories
	tx     repository.TxManager
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repos *repository.Repositories, tx repository.TxManager, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repos: repos, tx: tx, logger: logger}
}

func (s *catalogServiceImpl) ListSuppliers(ctx context.Context) ([]models.Supplier, *ServiceError) {
	suppliers, err := s.repos.Suppliers.FindAll(ctx)
	if err != nil {
		s.logger.Error("List suppliers failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load suppliers"}
	}
	return suppliers, nil
}

// ListProducts lists the catalog joined with supplier names. nameFilter, when
// non-empty, is matched as a case-sensitive substring and bound as a query
// parameter by the repository.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, nameFilter string) ([]models.ProductWithSupplier, *ServiceError) {
	products, err := s.repos.Products.FindAllWithSupplier(ctx, nameFilter)
	if err != nil {
		s.logger.Error("List products failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load products"}
	}
	return products, nil
}

// CreateProduct checks, in order: the price is positive, the name is present,
// then — inside one transaction — the supplier exists, and only then inserts.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError) {
	if req.Price <= 0 {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Price needs to be a positive number"}
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Please provide a product name"}
	}

	product := &models.Product{
		ProductName: req.Name,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	}
	err := s.tx.InTx(ctx, func(r *repository.Repositories) error {
		exists, err := r.Suppliers.Exists(ctx, req.SupplierID)
		if err != nil {
			return err
		}
		if !exists {
			return errSupplierMissing
		}
		return r.Products.Create(ctx, product)
	})

	switch {
	case err == nil:
		s.logger.Info("Product created",
			zap.Uint("product_id", product.ID),
			zap.Uint("supplier_id", product.SupplierID),
		)
		return product, nil
	case errors.Is(err, errSupplierMissing):
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Supplier does not exist"}
	default:
		s.logger.Error("Create product failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create product"}
	}
}
