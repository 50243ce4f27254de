package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
	logger          *logger.Logger
}

func NewSettingsHandler(settingsService services.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetStoreSettings returns the storefront presentation settings
// @Router /settings/store [get]
func (h *SettingsHandler) GetStoreSettings(c *gin.Context) {
	settings, err := h.settingsService.GetStore(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Store settings")
		return
	}

	utils.SuccessResponse(c, "Store settings retrieved successfully", settings)
}

// UpdateStoreSettings merges the hero and theme sections present in the
// request into the stored settings.
// @Router /admin/settings/store [put]
func (h *SettingsHandler) UpdateStoreSettings(c *gin.Context) {
	var req models.UpdateStoreSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	settings, err := h.settingsService.UpdateStore(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Store settings")
		return
	}

	utils.SuccessResponse(c, "Store settings updated successfully", settings)
}

// GetPaymentSettings returns the payment method configuration
// @Router /admin/settings/payments [get]
func (h *SettingsHandler) GetPaymentSettings(c *gin.Context) {
	settings, err := h.settingsService.GetPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Payment settings")
		return
	}

	utils.SuccessResponse(c, "Payment settings retrieved successfully", settings)
}

// UpdatePaymentSettings replaces the payment method sections present in
// the request.
// @Router /admin/settings/payments [put]
func (h *SettingsHandler) UpdatePaymentSettings(c *gin.Context) {
	var req models.UpdatePaymentSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	settings, err := h.settingsService.UpdatePayments(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Payment settings")
		return
	}

	utils.SuccessResponse(c, "Payment settings updated successfully", settings)
}
