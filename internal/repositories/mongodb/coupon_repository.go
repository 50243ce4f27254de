package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type couponRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewCouponRepository(db *mongo.Database, cache CacheService) interfaces.CouponRepository {
	return &couponRepository{
		collection: db.Collection("coupons"),
		cache:      cache,
	}
}

func (r *couponRepository) Create(ctx context.Context, coupon *models.Coupon) error {
	now := time.Now()
	coupon.CreatedAt = now
	coupon.UpdatedAt = now
	coupon.Code = strings.ToUpper(coupon.Code)

	_, err := r.collection.InsertOne(ctx, coupon)
	if err != nil {
		return fmt.Errorf("failed to create coupon: %w", err)
	}

	if coupon.Active {
		r.cacheCoupon(ctx, coupon)
	}

	return nil
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (*models.Coupon, error) {
	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("coupon %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get coupon: %w", err)
	}

	return &coupon, nil
}

func (r *couponRepository) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	code = strings.ToUpper(code)

	cacheKey := couponCodeKey(code)
	if r.cache != nil {
		var coupon models.Coupon
		if err := r.cache.Get(ctx, cacheKey, &coupon); err == nil {
			return &coupon, nil
		}
	}

	var coupon models.Coupon
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&coupon)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("coupon code %s: %w", code, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get coupon by code: %w", err)
	}

	if coupon.Active {
		r.cacheCoupon(ctx, &coupon)
	}

	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context) ([]*models.Coupon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer cursor.Close(ctx)

	var coupons []*models.Coupon
	if err := cursor.All(ctx, &coupons); err != nil {
		return nil, fmt.Errorf("failed to decode coupons: %w", err)
	}

	return coupons, nil
}

func (r *couponRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	if code, exists := updates["code"]; exists {
		if codeStr, ok := code.(string); ok {
			updates["code"] = strings.ToUpper(codeStr)
		}
	}

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("coupon %s: %w", id, interfaces.ErrNotFound)
	}

	r.invalidateCoupon(ctx, id)

	return nil
}

func (r *couponRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}

	r.invalidateCoupon(ctx, id)

	return nil
}

// RedeemUse consumes one use in a single conditional update. The guard
// keeps used_count strictly below max_uses for limited coupons, so N
// concurrent redemptions of a maxUses=m coupon succeed exactly m times.
func (r *couponRepository) RedeemUse(ctx context.Context, id string) (bool, error) {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"max_uses": 0},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$used_count", "$max_uses"}}},
		},
	}

	result, err := r.collection.UpdateOne(
		ctx,
		filter,
		bson.M{
			"$inc": bson.M{"used_count": 1},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return false, fmt.Errorf("failed to redeem coupon use: %w", err)
	}

	if result.MatchedCount > 0 {
		r.invalidateCoupon(ctx, id)
		return true, nil
	}

	return false, nil
}

// ReleaseUse undoes one redemption. The guard keeps used_count from going
// negative if compensation is retried.
func (r *couponRepository) ReleaseUse(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "used_count": bson.M{"$gt": 0}},
		bson.M{
			"$inc": bson.M{"used_count": -1},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to release coupon use: %w", err)
	}

	r.invalidateCoupon(ctx, id)

	return nil
}

func (r *couponRepository) cacheCoupon(ctx context.Context, coupon *models.Coupon) {
	if r.cache == nil {
		return
	}
	r.cache.Set(ctx, couponCodeKey(coupon.Code), coupon, couponCacheTTL)
}

// invalidateCoupon needs the code for the cache key; a stale read here is
// harmless because the fetch below is best-effort.
func (r *couponRepository) invalidateCoupon(ctx context.Context, id string) {
	if r.cache == nil {
		return
	}

	var coupon models.Coupon
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&coupon); err == nil {
		r.cache.Delete(ctx, couponCodeKey(coupon.Code))
	}
}

func couponCodeKey(code string) string {
	return fmt.Sprintf("coupon_code_%s", strings.ToUpper(code))
}
