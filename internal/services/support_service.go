package services

import (
	"context"
	"fmt"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type SupportService interface {
	CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.SupportTicket, error)
	ListTickets(ctx context.Context, params *utils.PaginationParams) ([]*models.SupportTicket, int64, error)
	UpdateTicket(ctx context.Context, id string, req *models.UpdateTicketRequest) (*models.SupportTicket, error)

	CreateMessage(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error)
	ListMessages(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactMessage, int64, error)
	UpdateMessageStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error)
}

type supportService struct {
	ticketRepo  interfaces.TicketRepository
	messageRepo interfaces.MessageRepository
	logger      *logger.Logger
}

func NewSupportService(
	ticketRepo interfaces.TicketRepository,
	messageRepo interfaces.MessageRepository,
	logger *logger.Logger,
) SupportService {
	return &supportService{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (s *supportService) CreateTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.SupportTicket, error) {
	ticket := &models.SupportTicket{
		ID:      utils.GenerateTicketID(),
		Status:  models.TicketStatusOpen,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Topic:   req.Topic,
		OrderID: req.OrderID,
		Message: req.Message,
	}

	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (s *supportService) ListTickets(ctx context.Context, params *utils.PaginationParams) ([]*models.SupportTicket, int64, error) {
	return s.ticketRepo.List(ctx, params)
}

// UpdateTicket takes status and/or admin notes. Ticket statuses move
// freely; unlike orders there is no transition table here.
func (s *supportService) UpdateTicket(ctx context.Context, id string, req *models.UpdateTicketRequest) (*models.SupportTicket, error) {
	updates := make(map[string]interface{})

	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, fmt.Errorf("invalid ticket status %q", *req.Status)
		}
		updates["status"] = *req.Status
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) == 0 {
		return s.ticketRepo.GetByID(ctx, id)
	}

	return s.ticketRepo.Update(ctx, id, updates)
}

func (s *supportService) CreateMessage(ctx context.Context, req *models.ContactRequest) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		ID:      utils.GenerateMessageID(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.MessageStatusNew,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return message, nil
}

func (s *supportService) ListMessages(ctx context.Context, params *utils.PaginationParams) ([]*models.ContactMessage, int64, error) {
	return s.messageRepo.List(ctx, params)
}

func (s *supportService) UpdateMessageStatus(ctx context.Context, id string, status models.MessageStatus) (*models.ContactMessage, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid message status %q", status)
	}

	return s.messageRepo.UpdateStatus(ctx, id, status)
}
