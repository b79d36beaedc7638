package controllers

import (
	"net/http"

	"github.com/Moonia9/Databases-Homework/models"
	"github.com/Moonia9/Databases-Homework/services"

	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests for customer operations.
type CustomerController struct {
	customerService services.CustomerService
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(svc services.CustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// ListCustomers handles GET /customers
func (cc *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, svcErr := cc.customerService.List(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:customerId
func (cc *CustomerController) GetCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok {
		return
	}

	customer, svcErr := cc.customerService.Get(ctx.Request.Context(), id)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /customers
func (cc *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req models.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	customer, svcErr := cc.customerService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Customer has been created", "customer": customer})
}

// UpdateCustomer handles PUT /customers/:customerId
func (cc *CustomerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok {
		return
	}

	var req models.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	customer, svcErr := cc.customerService.Update(ctx.Request.Context(), id, &req)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer has been updated", "customer": customer})
}

// DeleteCustomer handles DELETE /customers/:customerId
func (cc *CustomerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "customerId")
	if !ok {
		return
	}

	if svcErr := cc.customerService.Delete(ctx.Request.Context(), id); svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Customer has been deleted"})
}
