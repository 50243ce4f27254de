package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCoupon(t *testing.T, repo *fakeCouponRepo, coupon *models.Coupon) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), coupon))
}

func TestCouponValidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	newService := func(t *testing.T) (CouponService, *fakeCouponRepo) {
		repo := newFakeCouponRepo()
		return NewCouponService(repo, testLogger()), repo
	}

	t.Run("percent discount", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "SAVE10", Type: models.CouponTypePercent, Amount: 10, Active: true,
		})

		coupon, discount, err := service.Validate(ctx, "SAVE10", 120, now)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", coupon.Code)
		assert.Equal(t, 12.0, discount)
	})

	t.Run("code match is case insensitive", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "SAVE10", Type: models.CouponTypePercent, Amount: 10, Active: true,
		})

		_, discount, err := service.Validate(ctx, "save10", 100, now)
		require.NoError(t, err)
		assert.Equal(t, 10.0, discount)
	})

	t.Run("fixed discount capped at subtotal", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "FLAT50", Type: models.CouponTypeFixed, Amount: 50, Active: true,
		})

		_, discount, err := service.Validate(ctx, "FLAT50", 30, now)
		require.NoError(t, err)
		assert.Equal(t, 30.0, discount)
	})

	t.Run("unknown code", func(t *testing.T) {
		service, _ := newService(t)

		_, _, err := service.Validate(ctx, "NOPE", 100, now)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponNotFound, domainErr.Code)
	})

	t.Run("inactive coupon", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "OFF", Type: models.CouponTypePercent, Amount: 10, Active: false,
		})

		_, _, err := service.Validate(ctx, "OFF", 100, now)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponInactive, domainErr.Code)
	})

	t.Run("expired coupon", func(t *testing.T) {
		service, repo := newService(t)
		expired := now.Add(-time.Hour)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "OLD", Type: models.CouponTypePercent, Amount: 10, Active: true,
			ExpiresAt: &expired,
		})

		_, _, err := service.Validate(ctx, "OLD", 100, now)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponExpired, domainErr.Code)
	})

	t.Run("expiry boundary is still valid", func(t *testing.T) {
		service, repo := newService(t)
		exactly := now
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "EDGE", Type: models.CouponTypePercent, Amount: 10, Active: true,
			ExpiresAt: &exactly,
		})

		_, _, err := service.Validate(ctx, "EDGE", 100, now)
		assert.NoError(t, err)
	})

	t.Run("subtotal below minimum", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "BIG", Type: models.CouponTypeFixed, Amount: 20, Active: true,
			MinSubtotal: 100,
		})

		_, _, err := service.Validate(ctx, "BIG", 99.99, now)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponMinSubtotal, domainErr.Code)

		// Exactly at the minimum passes.
		_, _, err = service.Validate(ctx, "BIG", 100, now)
		assert.NoError(t, err)
	})

	t.Run("exhausted coupon", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "RARE", Type: models.CouponTypeFixed, Amount: 5, Active: true,
			MaxUses: 3, UsedCount: 3,
		})

		_, _, err := service.Validate(ctx, "RARE", 100, now)
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponExhausted, domainErr.Code)
	})

	t.Run("zero max uses means unlimited", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "FOREVER", Type: models.CouponTypeFixed, Amount: 5, Active: true,
			MaxUses: 0, UsedCount: 100000,
		})

		_, _, err := service.Validate(ctx, "FOREVER", 100, now)
		assert.NoError(t, err)
	})

	t.Run("validation never mutates the coupon", func(t *testing.T) {
		service, repo := newService(t)
		seedCoupon(t, repo, &models.Coupon{
			ID: "c_1", Code: "SAVE10", Type: models.CouponTypePercent, Amount: 10, Active: true,
			MaxUses: 5,
		})

		for i := 0; i < 4; i++ {
			_, _, err := service.Validate(ctx, "SAVE10", 100, now)
			require.NoError(t, err)
		}

		stored, err := repo.GetByID(ctx, "c_1")
		require.NoError(t, err)
		assert.Equal(t, 0, stored.UsedCount)
	})
}

func TestCouponRedeemConcurrency(t *testing.T) {
	repo := newFakeCouponRepo()
	service := NewCouponService(repo, testLogger())
	ctx := context.Background()

	const maxUses = 5
	const attempts = 20

	seedCoupon(t, repo, &models.Coupon{
		ID: "c_limited", Code: "LIMITED", Type: models.CouponTypeFixed, Amount: 5, Active: true,
		MaxUses: maxUses,
	})

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- service.Redeem(ctx, "c_limited")
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	exhausted := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, utils.CodeCouponExhausted, domainErr.Code)
		exhausted++
	}

	assert.Equal(t, maxUses, succeeded)
	assert.Equal(t, attempts-maxUses, exhausted)

	stored, err := repo.GetByID(ctx, "c_limited")
	require.NoError(t, err)
	assert.Equal(t, maxUses, stored.UsedCount)
}

func TestCouponReleaseRestoresUse(t *testing.T) {
	repo := newFakeCouponRepo()
	service := NewCouponService(repo, testLogger())
	ctx := context.Background()

	seedCoupon(t, repo, &models.Coupon{
		ID: "c_1", Code: "ONE", Type: models.CouponTypeFixed, Amount: 5, Active: true,
		MaxUses: 1,
	})

	require.NoError(t, service.Redeem(ctx, "c_1"))
	require.Error(t, service.Redeem(ctx, "c_1"))

	require.NoError(t, service.Release(ctx, "c_1"))
	assert.NoError(t, service.Redeem(ctx, "c_1"))
}

func TestCouponCreate(t *testing.T) {
	repo := newFakeCouponRepo()
	service := NewCouponService(repo, testLogger())
	ctx := context.Background()

	amount := 15.0
	maxUses := 10

	coupon, err := service.Create(ctx, &models.CreateCouponRequest{
		Code:      "spring24",
		Type:      models.CouponTypePercent,
		Amount:    &amount,
		MaxUses:   &maxUses,
		ExpiresAt: "2024-12-31T23:59:59Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "SPRING24", coupon.Code)
	assert.True(t, coupon.Active)
	assert.Equal(t, 10, coupon.MaxUses)
	require.NotNil(t, coupon.ExpiresAt)
	assert.Equal(t, 2024, coupon.ExpiresAt.Year())

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := service.Create(ctx, &models.CreateCouponRequest{
			Code: "BAD", Type: "half-off", Amount: &amount,
		})
		assert.Error(t, err)
	})

	t.Run("rejects malformed expiry", func(t *testing.T) {
		_, err := service.Create(ctx, &models.CreateCouponRequest{
			Code: "BAD", Type: models.CouponTypeFixed, Amount: &amount, ExpiresAt: "tomorrow",
		})
		assert.Error(t, err)
	})
}
