package controllers

import (
	"net/http"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/services"

	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for suppliers and products.
type CatalogController struct {
	catalogService services.CatalogService
	validator      *RequestValidator
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(svc services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: svc,
		validator:      NewRequestValidator(),
	}
}

// ListSuppliers handles GET /suppliers
func (cc *CatalogController) ListSuppliers(ctx *gin.Context) {
	suppliers, svcErr := cc.catalogService.ListSuppliers(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, suppliers)
}

// ListProducts handles GET /products with an optional ?name= substring filter.
func (cc *CatalogController) ListProducts(ctx *gin.Context) {
	nameFilter := ctx.Query("name")

	products, svcErr := cc.catalogService.ListProducts(ctx.Request.Context(), nameFilter)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /products
func (cc *CatalogController) CreateProduct(ctx *gin.Context) {
	var req models.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if err := cc.validator.Struct(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	product, svcErr := cc.catalogService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product has been created", "product": product})
}
