package handlers

import (
	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
	logger       *logger.Logger
}

func NewOrderHandler(orderService services.OrderService, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// checkoutResponse wraps the created order together with the coupon
// rejection, if the submitted code did not survive validation. The order
// itself is still created in that case, just without a discount.
type checkoutResponse struct {
	Order       *models.Order      `json:"order"`
	CouponError *couponErrorDetail `json:"couponError,omitempty"`
}

type couponErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Checkout creates an order from a cart submission
// @Router /orders/checkout [post]
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}

	if errs := validators.ValidateCheckoutRequest(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	result, err := h.orderService.Checkout(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Order")
		return
	}

	resp := checkoutResponse{Order: result.Order}
	if result.CouponError != nil {
		resp.CouponError = &couponErrorDetail{
			Code:    result.CouponError.Code,
			Message: result.CouponError.Message,
		}
	}

	utils.CreatedResponse(c, "Order created successfully", resp)
}

// GetOrder returns a single order by id
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.logger, err, "Order")
		return
	}

	utils.SuccessResponse(c, "Order retrieved successfully", order)
}

// ListOrders returns orders for the admin dashboard, newest first
// @Router /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.List(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, h.logger, err, "Order")
		return
	}

	meta := &utils.Meta{
		Pagination: utils.BuildPaginationMeta(params, total),
		Count:      len(orders),
	}
	utils.SuccessResponseWithMeta(c, "Orders retrieved successfully", orders, meta)
}

// UpdateOrderStatus moves an order along its lifecycle
// @Router /admin/orders/{id}/status [put]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}

	order, err := h.orderService.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		respondServiceError(c, h.logger, err, "Order")
		return
	}

	utils.SuccessResponse(c, "Order status updated successfully", order)
}
