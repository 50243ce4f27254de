package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

func testLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{
		Level:  logger.ErrorLevel,
		Format: "text",
		Output: "stderr",
	})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeCouponRepo mirrors the conditional-update semantics of the real
// repository under a mutex, so the concurrency tests exercise the same
// guarantees.
type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*models.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*models.Coupon)}
}

func (r *fakeCouponRepo) Create(ctx context.Context, coupon *models.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.coupons {
		if existing.Code == coupon.Code {
			return fmt.Errorf("duplicate code %q", coupon.Code)
		}
	}
	clone := *coupon
	r.coupons[coupon.ID] = &clone
	return nil
}

func (r *fakeCouponRepo) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[id]
	if !ok {
		return nil, fmt.Errorf("coupon %s: %w", id, interfaces.ErrNotFound)
	}
	clone := *coupon
	return &clone, nil
}

func (r *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	upper := strings.ToUpper(code)
	for _, coupon := range r.coupons {
		if coupon.Code == upper {
			clone := *coupon
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("coupon code %s: %w", code, interfaces.ErrNotFound)
}

func (r *fakeCouponRepo) List(ctx context.Context) ([]*models.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.Coupon, 0, len(r.coupons))
	for _, coupon := range r.coupons {
		clone := *coupon
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeCouponRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[id]
	if !ok {
		return fmt.Errorf("coupon %s: %w", id, interfaces.ErrNotFound)
	}
	if code, ok := updates["code"].(string); ok {
		coupon.Code = code
	}
	if active, ok := updates["active"].(bool); ok {
		coupon.Active = active
	}
	if amount, ok := updates["amount"].(float64); ok {
		coupon.Amount = amount
	}
	if maxUses, ok := updates["max_uses"].(int); ok {
		coupon.MaxUses = maxUses
	}
	return nil
}

func (r *fakeCouponRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coupons[id]; !ok {
		return fmt.Errorf("coupon %s: %w", id, interfaces.ErrNotFound)
	}
	delete(r.coupons, id)
	return nil
}

func (r *fakeCouponRepo) RedeemUse(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[id]
	if !ok {
		return false, nil
	}
	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return false, nil
	}
	coupon.UsedCount++
	return true, nil
}

func (r *fakeCouponRepo) ReleaseUse(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[id]
	if !ok || coupon.UsedCount == 0 {
		return nil
	}
	coupon.UsedCount--
	return nil
}

type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]*models.Order
	failCreate error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreate != nil {
		return r.failCreate
	}
	clone := *order
	r.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, interfaces.ErrNotFound)
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) GetByStatus(ctx context.Context, status models.OrderStatus, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Order
	for _, order := range r.orders {
		if order.Status == status {
			clone := *order
			result = append(result, &clone)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeOrderRepo) UpdateStatusFrom(ctx context.Context, id string, from, to models.OrderStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	return true, nil
}

type fakeReturnRepo struct {
	mu       sync.Mutex
	requests map[string]*models.ReturnRequest
}

func newFakeReturnRepo() *fakeReturnRepo {
	return &fakeReturnRepo{requests: make(map[string]*models.ReturnRequest)}
}

func (r *fakeReturnRepo) Create(ctx context.Context, request *models.ReturnRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *request
	r.requests[request.ID] = &clone
	return nil
}

func (r *fakeReturnRepo) GetByID(ctx context.Context, id string) (*models.ReturnRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok {
		return nil, fmt.Errorf("return %s: %w", id, interfaces.ErrNotFound)
	}
	clone := *request
	return &clone, nil
}

func (r *fakeReturnRepo) List(ctx context.Context, params *utils.PaginationParams) ([]*models.ReturnRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.ReturnRequest, 0, len(r.requests))
	for _, request := range r.requests {
		clone := *request
		result = append(result, &clone)
	}
	return result, int64(len(result)), nil
}

func (r *fakeReturnRepo) UpdateStatusFrom(ctx context.Context, id string, from, to models.ReturnStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	request, ok := r.requests[id]
	if !ok || request.Status != from {
		return false, nil
	}
	request.Status = to
	return true, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*models.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*models.Product)}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *product
	r.products[product.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, interfaces.ErrNotFound)
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, product := range r.products {
		if product.Slug == slug {
			clone := *product
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("product slug %s: %w", slug, interfaces.ErrNotFound)
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeProductRepo) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*models.Product
	for _, product := range r.products {
		if product.Category == category {
			clone := *product
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, interfaces.ErrNotFound)
	}
	if name, ok := updates["name"].(string); ok {
		product.Name = name
	}
	if price, ok := updates["price"].(float64); ok {
		product.Price = price
	}
	if featured, ok := updates["featured"].(bool); ok {
		product.Featured = featured
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id, interfaces.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories []*models.StoreCategory
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{}
}

func (r *fakeCategoryRepo) ListAll(ctx context.Context) ([]*models.StoreCategory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*models.StoreCategory, 0, len(r.categories))
	for _, category := range r.categories {
		clone := *category
		result = append(result, &clone)
	}
	return result, nil
}

func (r *fakeCategoryRepo) ReplaceAll(ctx context.Context, categories []*models.StoreCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = nil
	for _, category := range categories {
		clone := *category
		r.categories = append(r.categories, &clone)
	}
	return nil
}

// fakeSettingsRepo holds the three singleton documents in memory.
type fakeSettingsRepo struct {
	mu       sync.Mutex
	shipping *models.ShippingSettings
	store    *models.StoreSettings
	payments *models.PaymentSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) GetShipping(ctx context.Context) (*models.ShippingSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.shipping == nil {
		return &models.ShippingSettings{}, nil
	}
	clone := *r.shipping
	clone.Zones = append([]models.ShippingZone(nil), r.shipping.Zones...)
	return &clone, nil
}

func (r *fakeSettingsRepo) PutShipping(ctx context.Context, settings *models.ShippingSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *settings
	clone.Zones = append([]models.ShippingZone(nil), settings.Zones...)
	r.shipping = &clone
	return nil
}

func (r *fakeSettingsRepo) GetStore(ctx context.Context) (*models.StoreSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store == nil {
		return &models.StoreSettings{}, nil
	}
	clone := *r.store
	return &clone, nil
}

func (r *fakeSettingsRepo) PutStore(ctx context.Context, settings *models.StoreSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *settings
	r.store = &clone
	return nil
}

func (r *fakeSettingsRepo) GetPayments(ctx context.Context) (*models.PaymentSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.payments == nil {
		return &models.PaymentSettings{}, nil
	}
	clone := *r.payments
	return &clone, nil
}

func (r *fakeSettingsRepo) PutPayments(ctx context.Context, settings *models.PaymentSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *settings
	r.payments = &clone
	return nil
}
