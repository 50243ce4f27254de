package models

import "time"

type CouponType string

const (
	CouponTypePercent CouponType = "percent"
	CouponTypeFixed   CouponType = "fixed"
)

func (t CouponType) IsValid() bool {
	return t == CouponTypePercent || t == CouponTypeFixed
}

// Coupon codes are stored upper-cased and matched case-insensitively.
// MaxUses of 0 means unlimited; when MaxUses > 0, UsedCount never exceeds it.
type Coupon struct {
	ID          string     `json:"id" bson:"_id"`
	Code        string     `json:"code" bson:"code" validate:"required"`
	Type        CouponType `json:"type" bson:"type" validate:"required"`
	Amount      float64    `json:"amount" bson:"amount" validate:"gte=0"`
	Active      bool       `json:"active" bson:"active"`
	MinSubtotal float64    `json:"minSubtotal" bson:"min_subtotal"`
	MaxUses     int        `json:"maxUses" bson:"max_uses"`
	UsedCount   int        `json:"usedCount" bson:"used_count"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty" bson:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
}

// Discount computes the discount this coupon grants against a subtotal.
// Percent discounts are capped at the subtotal, fixed discounts never exceed
// it, so an order total can never go negative through a coupon.
func (c *Coupon) Discount(subtotal float64) float64 {
	var discount float64
	switch c.Type {
	case CouponTypePercent:
		discount = subtotal * c.Amount / 100
	case CouponTypeFixed:
		discount = c.Amount
	}

	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}

	return discount
}
