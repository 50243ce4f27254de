package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ShippingHandler struct {
	shippingService services.ShippingService
	logger          *logger.Logger
}

func NewShippingHandler(shippingService services.ShippingService, logger *logger.Logger) *ShippingHandler {
	return &ShippingHandler{
		shippingService: shippingService,
		logger:          logger,
	}
}

// GetSettings returns the shipping configuration
// @Router /admin/settings/shipping [get]
func (h *ShippingHandler) GetSettings(c *gin.Context) {
	settings, err := h.shippingService.GetSettings(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Shipping settings")
		return
	}

	utils.SuccessResponse(c, "Shipping settings retrieved successfully", settings)
}

// UpdateSettings replaces the shipping configuration wholesale
// @Router /admin/settings/shipping [put]
func (h *ShippingHandler) UpdateSettings(c *gin.Context) {
	var settings models.ShippingSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	updated, err := h.shippingService.UpdateSettings(c.Request.Context(), &settings)
	if err != nil {
		respondServiceError(c, h.logger, err, "Shipping settings")
		return
	}

	utils.SuccessResponse(c, "Shipping settings updated successfully", updated)
}
