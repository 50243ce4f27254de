package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/utils"
)

type ReturnRepository interface {
	Create(ctx context.Context, request *models.ReturnRequest) error
	GetByID(ctx context.Context, id string) (*models.ReturnRequest, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.ReturnRequest, int64, error)

	// UpdateStatusFrom is the same conditional write as for orders; the
	// return workflow is its own state machine.
	UpdateStatusFrom(ctx context.Context, id string, from, to models.ReturnStatus) (bool, error)
}
