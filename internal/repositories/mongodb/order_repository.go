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

type orderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) interfaces.OrderRepository {
	return &orderRepository{
		collection: db.Collection("orders"),
	}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("order %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	return r.find(ctx, bson.M{}, params)
}

func (r *orderRepository) GetByStatus(ctx context.Context, status models.OrderStatus, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	return r.find(ctx, bson.M{"status": status}, params)
}

func (r *orderRepository) find(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Order, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, 0, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatusFrom is the single write path for status changes. The filter
// pins the expected current status so two racing transitions from the same
// state cannot both match.
func (r *orderRepository) UpdateStatusFrom(ctx context.Context, id string, from, to models.OrderStatus) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}

	return result.MatchedCount > 0, nil
}
