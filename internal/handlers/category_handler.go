package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	catalogService services.CatalogService
	logger         *logger.Logger
}

func NewCategoryHandler(catalogService services.CatalogService, logger *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListCategories returns the storefront category tree in display order
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Category")
		return
	}

	utils.SuccessResponse(c, "Categories retrieved successfully", categories)
}

// ReplaceCategories swaps the entire category list. Entries without an id
// or any name are dropped rather than rejected.
// @Router /admin/categories [put]
func (h *CategoryHandler) ReplaceCategories(c *gin.Context) {
	var req models.ReplaceCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	categories, err := h.catalogService.ReplaceCategories(c.Request.Context(), req.Categories)
	if err != nil {
		respondServiceError(c, h.logger, err, "Category")
		return
	}

	utils.SuccessResponse(c, "Categories replaced successfully", categories)
}
