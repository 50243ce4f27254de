package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/utils"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.Order, int64, error)
	GetByStatus(ctx context.Context, status models.OrderStatus, params *utils.PaginationParams) ([]*models.Order, int64, error)

	// UpdateStatusFrom sets the order's status to "to" only if it still is
	// "from". It reports whether the conditional write matched; false means
	// the record is missing or another writer won the race.
	UpdateStatusFrom(ctx context.Context, id string, from, to models.OrderStatus) (bool, error)
}
