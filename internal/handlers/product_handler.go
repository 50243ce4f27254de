package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalogService services.CatalogService
	logger         *logger.Logger
}

func NewProductHandler(catalogService services.CatalogService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListProducts returns the catalog, optionally filtered by category
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.Query("category")

	products, err := h.catalogService.ListProducts(c.Request.Context(), category)
	if err != nil {
		respondServiceError(c, h.logger, err, "Product")
		return
	}

	utils.SuccessResponse(c, "Products retrieved successfully", products)
}

// GetProduct returns one product by id, falling back to slug lookup so
// storefront URLs keep working.
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		product, err = h.catalogService.GetProductBySlug(c.Request.Context(), id)
	}
	if err != nil {
		respondServiceError(c, h.logger, err, "Product")
		return
	}

	utils.SuccessResponse(c, "Product retrieved successfully", product)
}

// CreateProduct adds a product to the catalog
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Product")
		return
	}

	utils.CreatedResponse(c, "Product created successfully", product)
}

// UpdateProduct applies a partial update to a product
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Product")
		return
	}

	utils.SuccessResponse(c, "Product updated successfully", product)
}

// DeleteProduct removes a product from the catalog
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Product")
		return
	}

	utils.SuccessResponse(c, "Product deleted successfully", nil)
}
