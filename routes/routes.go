package routes

import (
	"github.com/Moonia9/Databases-Homework/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the full HTTP surface of the API.
func RegisterRoutes(
	r *gin.Engine,
	cc *controllers.CustomerController,
	cat *controllers.CatalogController,
	oc *controllers.OrderController,
) {
	customers := r.Group("/customers")
	customers.GET("", cc.ListCustomers)
	customers.POST("", cc.CreateCustomer)
	customers.GET("/:customerId", cc.GetCustomer)
	customers.PUT("/:customerId", cc.UpdateCustomer)
	customers.DELETE("/:customerId", cc.DeleteCustomer)
	customers.GET("/:customerId/orders", oc.ListCustomerOrders)
	customers.POST("/:customerId/orders", oc.CreateOrder)

	r.GET("/suppliers", cat.ListSuppliers)
	r.GET("/products", cat.ListProducts)
	r.POST("/products", cat.CreateProduct)

	r.DELETE("/orders/:orderId", oc.DeleteOrder)
}
