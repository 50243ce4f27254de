package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type CouponService interface {
	// Validate checks a code against a subtotal and returns the coupon and
	// the discount it grants. All failures are DomainErrors with reason
	// codes; validation never mutates the coupon.
	Validate(ctx context.Context, code string, subtotal float64, now time.Time) (*models.Coupon, float64, error)

	// Redeem consumes one use after a successful order creation.
	// ErrCouponExhausted when a concurrent checkout took the last use.
	Redeem(ctx context.Context, id string) error

	// Release undoes a redemption when the surrounding checkout failed.
	Release(ctx context.Context, id string) error

	Create(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error)
	Update(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*models.Coupon, error)
}

type couponService struct {
	couponRepo interfaces.CouponRepository
	logger     *logger.Logger
}

func NewCouponService(couponRepo interfaces.CouponRepository, logger *logger.Logger) CouponService {
	return &couponService{
		couponRepo: couponRepo,
		logger:     logger,
	}
}

func (s *couponService) Validate(ctx context.Context, code string, subtotal float64, now time.Time) (*models.Coupon, float64, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, 0, ErrCouponNotFound
		}
		return nil, 0, err
	}

	if !coupon.Active {
		return nil, 0, ErrCouponInactive
	}
	if coupon.ExpiresAt != nil && now.After(*coupon.ExpiresAt) {
		return nil, 0, ErrCouponExpired
	}
	if subtotal < coupon.MinSubtotal {
		return nil, 0, ErrCouponBelowMinimum
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return nil, 0, ErrCouponExhausted
	}

	return coupon, utils.RoundMoney(coupon.Discount(subtotal)), nil
}

func (s *couponService) Redeem(ctx context.Context, id string) error {
	redeemed, err := s.couponRepo.RedeemUse(ctx, id)
	if err != nil {
		return err
	}
	if !redeemed {
		return ErrCouponExhausted
	}

	s.logger.LogCouponEvent(id, "redeemed", nil)

	return nil
}

func (s *couponService) Release(ctx context.Context, id string) error {
	return s.couponRepo.ReleaseUse(ctx, id)
}

func (s *couponService) Create(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("invalid coupon type %q", req.Type)
	}

	coupon := &models.Coupon{
		ID:     utils.GenerateCouponID(),
		Code:   strings.ToUpper(req.Code),
		Type:   req.Type,
		Amount: *req.Amount,
		Active: true,
	}

	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.MinSubtotal != nil {
		coupon.MinSubtotal = *req.MinSubtotal
	}
	if req.MaxUses != nil {
		coupon.MaxUses = *req.MaxUses
	}
	if req.ExpiresAt != "" {
		expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("invalid expiresAt: %w", err)
		}
		coupon.ExpiresAt = &expiresAt
	}

	if err := s.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.LogCouponEvent(coupon.Code, "created", map[string]interface{}{
		"type":   coupon.Type,
		"amount": coupon.Amount,
	})

	return coupon, nil
}

func (s *couponService) Update(ctx context.Context, id string, req *models.UpdateCouponRequest) (*models.Coupon, error) {
	updates := make(map[string]interface{})

	if req.Code != nil {
		updates["code"] = strings.ToUpper(*req.Code)
	}
	if req.Type != nil {
		if !models.CouponType(*req.Type).IsValid() {
			return nil, fmt.Errorf("invalid coupon type %q", *req.Type)
		}
		updates["type"] = *req.Type
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}
	if req.MinSubtotal != nil {
		updates["min_subtotal"] = *req.MinSubtotal
	}
	if req.MaxUses != nil {
		updates["max_uses"] = *req.MaxUses
	}
	if req.ExpiresAt != nil {
		if *req.ExpiresAt == "" {
			updates["expires_at"] = nil
		} else {
			expiresAt, err := time.Parse(time.RFC3339, *req.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("invalid expiresAt: %w", err)
			}
			updates["expires_at"] = expiresAt
		}
	}

	if len(updates) > 0 {
		if err := s.couponRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	return s.couponRepo.GetByID(ctx, id)
}

// Delete removes the coupon outright. Orders that already redeemed it keep
// their computed discount.
func (s *couponService) Delete(ctx context.Context, id string) error {
	return s.couponRepo.Delete(ctx, id)
}

func (s *couponService) List(ctx context.Context) ([]*models.Coupon, error) {
	return s.couponRepo.List(ctx)
}
