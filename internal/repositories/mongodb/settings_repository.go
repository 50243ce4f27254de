package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Settings live as singleton documents in one collection, keyed by a fixed
// _id per settings kind.
const (
	settingsDocShipping = "shipping"
	settingsDocStore    = "store"
	settingsDocPayments = "payments"
)

type settingsRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewSettingsRepository(db *mongo.Database, cache CacheService) interfaces.SettingsRepository {
	return &settingsRepository{
		collection: db.Collection("settings"),
		cache:      cache,
	}
}

func (r *settingsRepository) GetShipping(ctx context.Context) (*models.ShippingSettings, error) {
	cacheKey := settingsKey(settingsDocShipping)
	if r.cache != nil {
		var settings models.ShippingSettings
		if err := r.cache.Get(ctx, cacheKey, &settings); err == nil {
			return &settings, nil
		}
	}

	var doc struct {
		Settings models.ShippingSettings `bson:"settings"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocShipping}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.ShippingSettings{Currency: "USD"}, nil
		}
		return nil, fmt.Errorf("failed to get shipping settings: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, doc.Settings, settingsCacheTTL)
	}

	return &doc.Settings, nil
}

func (r *settingsRepository) PutShipping(ctx context.Context, settings *models.ShippingSettings) error {
	return r.put(ctx, settingsDocShipping, settings)
}

func (r *settingsRepository) GetStore(ctx context.Context) (*models.StoreSettings, error) {
	var doc struct {
		Settings models.StoreSettings `bson:"settings"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocStore}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.StoreSettings{}, nil
		}
		return nil, fmt.Errorf("failed to get store settings: %w", err)
	}

	return &doc.Settings, nil
}

func (r *settingsRepository) PutStore(ctx context.Context, settings *models.StoreSettings) error {
	return r.put(ctx, settingsDocStore, settings)
}

func (r *settingsRepository) GetPayments(ctx context.Context) (*models.PaymentSettings, error) {
	var doc struct {
		Settings models.PaymentSettings `bson:"settings"`
	}
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocPayments}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.PaymentSettings{}, nil
		}
		return nil, fmt.Errorf("failed to get payment settings: %w", err)
	}

	return &doc.Settings, nil
}

func (r *settingsRepository) PutPayments(ctx context.Context, settings *models.PaymentSettings) error {
	return r.put(ctx, settingsDocPayments, settings)
}

func (r *settingsRepository) put(ctx context.Context, id string, settings interface{}) error {
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"_id": id, "settings": settings},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to put %s settings: %w", id, err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, settingsKey(id))
	}

	return nil
}

func settingsKey(id string) string {
	return fmt.Sprintf("settings_%s", id)
}
