package services

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type ReturnService interface {
	Create(ctx context.Context, req *models.CreateReturnRequest) (*models.ReturnRequest, error)
	GetByID(ctx context.Context, id string) (*models.ReturnRequest, error)
	List(ctx context.Context, params *utils.PaginationParams) ([]*models.ReturnRequest, int64, error)
	Transition(ctx context.Context, id string, newStatus models.ReturnStatus) (*models.ReturnRequest, error)
}

type returnService struct {
	returnRepo interfaces.ReturnRepository
	logger     *logger.Logger
}

func NewReturnService(returnRepo interfaces.ReturnRepository, logger *logger.Logger) ReturnService {
	return &returnService{
		returnRepo: returnRepo,
		logger:     logger,
	}
}

// Create accepts any caller's submission. OrderID is a label only; it is
// not checked against the orders collection, and no order status changes
// because a return was filed.
func (s *returnService) Create(ctx context.Context, req *models.CreateReturnRequest) (*models.ReturnRequest, error) {
	request := &models.ReturnRequest{
		ID:      utils.GenerateReturnID(),
		Status:  models.ReturnStatusRequested,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		OrderID: req.OrderID,
		Reason:  req.Reason,
		Details: req.Details,
	}

	if err := s.returnRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"return_id": request.ID,
		"reason":    request.Reason,
	}).Info("Return request submitted")

	return request, nil
}

func (s *returnService) GetByID(ctx context.Context, id string) (*models.ReturnRequest, error) {
	return s.returnRepo.GetByID(ctx, id)
}

func (s *returnService) List(ctx context.Context, params *utils.PaginationParams) ([]*models.ReturnRequest, int64, error) {
	return s.returnRepo.List(ctx, params)
}

func (s *returnService) Transition(ctx context.Context, id string, newStatus models.ReturnStatus) (*models.ReturnRequest, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidTransition
	}

	request, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !request.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTransition
	}

	matched, err := s.returnRepo.UpdateStatusFrom(ctx, id, request.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, ErrInvalidTransition
	}

	s.logger.WithFields(map[string]interface{}{
		"return_id": id,
		"from":      request.Status,
		"to":        newStatus,
	}).Info("Return request status changed")

	return s.returnRepo.GetByID(ctx, id)
}
