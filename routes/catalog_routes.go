package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up product and category routes
func SetupCatalogRoutes(
	r *gin.RouterGroup,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.CategoryHandler,
	jwtSecret string,
) {
	// Public storefront catalog
	products := r.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
	r.GET("/categories", categoryHandler.ListCategories)

	// Admin catalog management
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.PUT("/categories", categoryHandler.ReplaceCategories)
	}
}
