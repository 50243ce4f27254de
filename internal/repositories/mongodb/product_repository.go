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

type productRepository struct {
	collection *mongo.Collection
	cache      CacheService
}

func NewProductRepository(db *mongo.Database, cache CacheService) interfaces.ProductRepository {
	return &productRepository{
		collection: db.Collection("products"),
		cache:      cache,
	}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	_, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	cacheKey := productKey(id)
	if r.cache != nil {
		var product models.Product
		if err := r.cache.Get(ctx, cacheKey, &product); err == nil {
			return &product, nil
		}
	}

	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, cacheKey, product, productCacheTTL)
	}

	return &product, nil
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product slug %s: %w", slug, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}

	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	return r.find(ctx, bson.M{"category": category})
}

func (r *productRepository) find(ctx context.Context, filter bson.M) ([]*models.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.Product, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, productKey(id))
	}

	return &updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if r.cache != nil {
		r.cache.Delete(ctx, productKey(id))
	}

	return nil
}

func productKey(id string) string {
	return fmt.Sprintf("product_%s", id)
}
