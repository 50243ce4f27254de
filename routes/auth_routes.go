package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the admin session routes
func SetupAuthRoutes(r *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := r.Group("/admin/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}
