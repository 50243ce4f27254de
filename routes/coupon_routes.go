package routes

import (
	"github.com/agatodfddd/luxora-store/internal/handlers"
	"github.com/agatodfddd/luxora-store/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCouponRoutes sets up the admin coupon management routes. There is
// no public coupon endpoint; validation happens inside checkout.
func SetupCouponRoutes(r *gin.RouterGroup, couponHandler *handlers.CouponHandler, jwtSecret string) {
	admin := r.Group("/admin/coupons")
	admin.Use(middleware.AdminRequired(jwtSecret))
	{
		admin.GET("", couponHandler.ListCoupons)
		admin.POST("", couponHandler.CreateCoupon)
		admin.PUT("/:id", couponHandler.UpdateCoupon)
		admin.DELETE("/:id", couponHandler.DeleteCoupon)
	}
}
