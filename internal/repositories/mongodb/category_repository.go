package mongodb

import (
	"context"
	"fmt"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) interfaces.CategoryRepository {
	return &categoryRepository{
		collection: db.Collection("categories"),
	}
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]*models.StoreCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*models.StoreCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}

	return categories, nil
}

// ReplaceAll drops and rewrites the full list. The admin UI edits
// categories as one ordered set, so partial updates have no callers.
func (r *categoryRepository) ReplaceAll(ctx context.Context, categories []*models.StoreCategory) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear categories: %w", err)
	}

	if len(categories) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(categories))
	for _, category := range categories {
		docs = append(docs, category)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert categories: %w", err)
	}

	return nil
}
