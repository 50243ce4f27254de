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

type ticketRepository struct {
	collection *mongo.Collection
}

func NewTicketRepository(db *mongo.Database) interfaces.TicketRepository {
	return &ticketRepository{
		collection: db.Collection("tickets"),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *models.SupportTicket) error {
	now := time.Now()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("ticket %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.SupportTicket, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []*models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tickets: %w", err)
	}

	return tickets, total, nil
}

func (r *ticketRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.SupportTicket, error) {
	updates["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.SupportTicket
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("ticket %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	return &updated, nil
}

type messageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) interfaces.MessageRepository {
	return &messageRepository{
		collection: db.Collection("messages"),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	message.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (r *messageRepository) List(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactMessage, int64, error) {
	filter := bson.M{}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
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
		return nil, 0, fmt.Errorf("failed to list messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, fmt.Errorf("failed to decode messages: %w", err)
	}

	return messages, total, nil
}

func (r *messageRepository) UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.ContactMessage
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("message %s: %w", id, interfaces.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	return &updated, nil
}
