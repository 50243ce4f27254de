package handlers

import (
	"errors"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login checks the admin credentials and issues a session token, both in
// the response body and as an HTTP-only cookie.
// @Router /admin/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	token, ttl, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.UnauthorizedResponse(c)
			return
		}
		respondServiceError(c, h.logger, err, "Session")
		return
	}

	c.SetCookie(utils.AdminCookieName, token, int(ttl.Seconds()), "/", "", false, true)

	utils.SuccessResponse(c, "Login successful", gin.H{
		"token":     token,
		"expiresIn": int(ttl.Seconds()),
	})
}

// Logout clears the admin session cookie
// @Router /admin/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(utils.AdminCookieName, "", -1, "/", "", false, true)

	utils.SuccessResponse(c, "Logged out successfully", nil)
}
