package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupReturnRoutes sets up routes for the return workflow
func SetupReturnRoutes(r *gin.RouterGroup, returnHandler *handlers.ReturnHandler, jwtSecret string) {
	// Public submission
	r.POST("/returns", returnHandler.CreateReturn)

	// Admin review queue
	admin := r.Group("/admin/returns")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("", returnHandler.ListReturns)
		admin.GET("/:id", returnHandler.GetReturn)
		admin.PUT("/:id/status", returnHandler.UpdateReturnStatus)
	}
}
