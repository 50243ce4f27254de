package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSettingsRoutes sets up store, shipping and payment settings routes
func SetupSettingsRoutes(
	r *gin.RouterGroup,
	settingsHandler *handlers.SettingsHandler,
	shippingHandler *handlers.ShippingHandler,
	jwtSecret string,
) {
	// The storefront reads presentation settings without auth.
	r.GET("/settings/store", settingsHandler.GetStoreSettings)

	admin := r.Group("/admin/settings")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.PUT("/store", settingsHandler.UpdateStoreSettings)
		admin.GET("/shipping", shippingHandler.GetSettings)
		admin.PUT("/shipping", shippingHandler.UpdateSettings)
		admin.GET("/payments", settingsHandler.GetPaymentSettings)
		admin.PUT("/payments", settingsHandler.UpdatePaymentSettings)
	}
}
