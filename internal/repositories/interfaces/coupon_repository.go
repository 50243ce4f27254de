package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *models.Coupon) error
	GetByID(ctx context.Context, id string) (*models.Coupon, error)

	// GetByCode matches case-insensitively; codes are stored upper-cased.
	GetByCode(ctx context.Context, code string) (*models.Coupon, error)
	List(ctx context.Context) ([]*models.Coupon, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// RedeemUse atomically increments the coupon's used count, guarded so
	// used_count never exceeds max_uses when max_uses > 0. It reports
	// whether a use was consumed; false means the coupon is exhausted or
	// gone.
	RedeemUse(ctx context.Context, id string) (bool, error)

	// ReleaseUse gives back one consumed use. Compensation for a checkout
	// that redeemed a coupon and then failed to persist the order.
	ReleaseUse(ctx context.Context, id string) error
}
