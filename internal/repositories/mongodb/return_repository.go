package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type returnRepository struct {
	collection *mongo.Collection
}

func NewReturnRepository(db *mongo.Database) interfaces.ReturnRepository {
	return &returnRepository{
		collection: db.Collection("returns"),
	}
}

func (r *returnRepository) Create(ctx context.Context, request *models.ReturnRequest) error {
	now := time.Now()
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create return request: %w", err)
	}

	return nil
}

func (r *returnRepository) GetByID(ctx context.Context, id string) (*models.ReturnRequest, error) {
	var request models.ReturnRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("return request %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get return request: %w", err)
	}

	return &request, nil
}

func (r *returnRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.ReturnRequest, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count return requests: %w", err)
	}

	sortOrder := -1
	if params.Order == "asc" {
		sortOrder = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: params.Sort, Value: sortOrder}}).
		SetSkip(int64(params.GetSkip())).
		SetLimit(int64(params.GetLimit()))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list return requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []*models.ReturnRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, 0, fmt.Errorf("failed to decode return requests: %w", err)
	}

	return requests, total, nil
}

func (r *returnRepository) UpdateStatusFrom(ctx context.Context, id string, from, to models.ReturnStatus) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update return status: %w", err)
	}

	return result.MatchedCount > 0, nil
}
