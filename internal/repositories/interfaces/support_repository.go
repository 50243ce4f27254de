package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/utils"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.SupportTicket) error
	GetByID(ctx context.Context, id string) (*models.SupportTicket, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.SupportTicket, int64, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.SupportTicket, error)
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactMessage, int64, error)
	UpdateStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error)
}
