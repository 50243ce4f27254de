package handlers

import (
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/services"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/internal/validators"
	"github.com/agatodfddd/luxora-store/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponService services.CouponService
	logger        *logger.Logger
}

func NewCouponHandler(couponService services.CouponService, logger *logger.Logger) *CouponHandler {
	return &CouponHandler{
		couponService: couponService,
		logger:        logger,
	}
}

// ListCoupons returns every coupon, including inactive and expired ones
// @Router /admin/coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.logger, err, "Coupon")
		return
	}

	utils.SuccessResponse(c, "Coupons retrieved successfully", coupons)
}

// CreateCoupon creates a coupon; codes are stored upper-cased
// @Router /admin/coupons [post]
func (h *CouponHandler) CreateCoupon(c *gin.Context) {
	var req models.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}
	if !req.Type.IsValid() {
		utils.BadRequestResponse(c, "Coupon type must be percent or fixed")
		return
	}
	if req.ExpiresAt != "" {
		if _, err := time.Parse(time.RFC3339, req.ExpiresAt); err != nil {
			utils.BadRequestResponse(c, "expiresAt must be an RFC 3339 timestamp")
			return
		}
	}

	coupon, err := h.couponService.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Coupon")
		return
	}

	utils.CreatedResponse(c, "Coupon created successfully", coupon)
}

// UpdateCoupon applies a partial update to a coupon
// @Router /admin/coupons/{id} [put]
func (h *CouponHandler) UpdateCoupon(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format")
		return
	}
	if errs := validators.ValidateStruct(&req); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Details())
		return
	}
	if req.Type != nil && !models.CouponType(*req.Type).IsValid() {
		utils.BadRequestResponse(c, "Coupon type must be percent or fixed")
		return
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		if _, err := time.Parse(time.RFC3339, *req.ExpiresAt); err != nil {
			utils.BadRequestResponse(c, "expiresAt must be an RFC 3339 timestamp")
			return
		}
	}

	coupon, err := h.couponService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, h.logger, err, "Coupon")
		return
	}

	utils.SuccessResponse(c, "Coupon updated successfully", coupon)
}

// DeleteCoupon removes a coupon. Orders that already used it keep their
// discount.
// @Router /admin/coupons/{id} [delete]
func (h *CouponHandler) DeleteCoupon(c *gin.Context) {
	id := c.Param("id")

	if err := h.couponService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, h.logger, err, "Coupon")
		return
	}

	utils.SuccessResponse(c, "Coupon deleted successfully", nil)
}
