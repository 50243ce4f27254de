package services

import (
	"context"
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

// CheckoutResult carries the created order plus the coupon rejection, if
// any. Checkout deliberately soft-fails on coupon problems: the order is
// created without a discount and CouponError tells the caller why.
type CheckoutResult struct {
	Order       *models.Order
	CouponError *DomainError
}

type OrderService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResult, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error)

	// Transition moves the order along the lifecycle table. Anything not
	// in the table, including target == current, fails with
	// ErrInvalidTransition and leaves the stored order untouched.
	Transition(ctx context.Context, id string, newStatus models.OrderStatus) (*models.Order, error)
}

type orderService struct {
	orderRepo       interfaces.OrderRepository
	couponService   CouponService
	shippingService ShippingService
	logger          *logger.Logger
}

func NewOrderService(
	orderRepo interfaces.OrderRepository,
	couponService CouponService,
	shippingService ShippingService,
	logger *logger.Logger,
) OrderService {
	return &orderService{
		orderRepo:       orderRepo,
		couponService:   couponService,
		shippingService: shippingService,
		logger:          logger,
	}
}

func (s *orderService) Checkout(ctx context.Context, req *models.CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := 0.0
	itemCount := 0
	for _, item := range req.Items {
		subtotal += item.Price * float64(item.Qty)
		itemCount += item.Qty
	}
	subtotal = utils.RoundMoney(subtotal)

	// Coupon validation is a soft gate; shipping is a hard one. Both run
	// before anything is written.
	var coupon *models.Coupon
	var discount float64
	var couponErr *DomainError

	if req.CouponCode != "" {
		validated, d, err := s.couponService.Validate(ctx, req.CouponCode, subtotal, time.Now())
		if err != nil {
			domainErr, ok := AsDomainError(err)
			if !ok {
				return nil, err
			}
			couponErr = domainErr
			s.logger.LogCouponEvent(req.CouponCode, "rejected_at_checkout", map[string]interface{}{
				"reason": domainErr.Code,
			})
		} else {
			coupon = validated
			discount = d
		}
	}

	shippingCost, zone, err := s.shippingService.Quote(ctx, req.Shipping.Country, itemCount, subtotal)
	if err != nil {
		return nil, err
	}

	// Redemption happens before the insert so an exhausted coupon can
	// still downgrade to the no-discount path; a failed insert releases
	// the consumed use.
	if coupon != nil {
		if err := s.couponService.Redeem(ctx, coupon.ID); err != nil {
			domainErr, ok := AsDomainError(err)
			if !ok {
				return nil, err
			}
			couponErr = domainErr
			coupon = nil
			discount = 0
		}
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}
	total = utils.RoundMoney(total + shippingCost)

	currency := req.Currency
	if currency == "" {
		currency = utils.DefaultCurrency
	}

	order := &models.Order{
		ID:           utils.GenerateOrderID(),
		Status:       models.OrderStatusNew,
		Items:        req.Items,
		Shipping:     req.Shipping,
		Payment:      req.Payment,
		Currency:     currency,
		Subtotal:     subtotal,
		Discount:     discount,
		ShippingCost: shippingCost,
		Total:        total,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		if coupon != nil {
			if releaseErr := s.couponService.Release(ctx, coupon.ID); releaseErr != nil {
				s.logger.WithError(releaseErr).WithField("coupon_id", coupon.ID).
					Error("Failed to release coupon use after checkout failure")
			}
		}
		return nil, err
	}

	s.logger.LogOrderEvent(order.ID, "created", map[string]interface{}{
		"total":    order.Total,
		"items":    itemCount,
		"zone":     zone.Name,
		"discount": discount,
	})

	return &CheckoutResult{Order: order, CouponError: couponErr}, nil
}

func (s *orderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(ctx, id)
}

func (s *orderService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

func (s *orderService) Transition(ctx context.Context, id string, newStatus models.OrderStatus) (*models.Order, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidTransition
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	// The write re-checks the source status: if a concurrent transition
	// got there first, the conditional update misses and the whole call
	// fails without touching the record.
	matched, err := s.orderRepo.UpdateStatusFrom(ctx, id, order.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrInvalidTransition
	}

	s.logger.LogOrderEvent(id, "status_changed", map[string]interface{}{
		"from": order.Status,
		"to":   newStatus,
	})

	return s.orderRepo.GetByID(ctx, id)
}
