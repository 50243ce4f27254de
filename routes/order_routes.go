package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupOrderRoutes sets up routes for checkout and order management
func SetupOrderRoutes(r *gin.RouterGroup, orderHandler *handlers.OrderHandler, jwtSecret string) {
	// Public storefront routes
	orders := r.Group("/orders")
	{
		orders.POST("/checkout", orderHandler.Checkout)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	// Admin order management
	admin := r.Group("/admin/orders")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("", orderHandler.ListOrders)
		admin.GET("/:id", orderHandler.GetOrder)
		admin.PUT("/:id/status", orderHandler.UpdateOrderStatus)
	}
}
