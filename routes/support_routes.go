package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupSupportRoutes sets up ticket and contact message routes
func SetupSupportRoutes(r *gin.RouterGroup, supportHandler *handlers.SupportHandler, jwtSecret string) {
	// Public submission
	r.POST("/support/tickets", supportHandler.CreateTicket)
	r.POST("/contact", supportHandler.CreateMessage)

	// Admin queues
	admin := r.Group("/admin")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("/support/tickets", supportHandler.ListTickets)
		admin.PUT("/support/tickets/:id", supportHandler.UpdateTicket)
		admin.GET("/messages", supportHandler.ListMessages)
		admin.PUT("/messages/:id/status", supportHandler.UpdateMessageStatus)
	}
}
