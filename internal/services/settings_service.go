package services

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type SettingsService interface {
	GetStore(ctx context.Context) (*models.StoreSettings, error)
	UpdateStore(ctx context.Context, req *models.UpdateStoreSettingsRequest) (*models.StoreSettings, error)

	GetPayments(ctx context.Context) (*models.PaymentSettings, error)
	UpdatePayments(ctx context.Context, req *models.UpdatePaymentSettingsRequest) (*models.PaymentSettings, error)
}

type settingsService struct {
	settingsRepo interfaces.SettingsRepository
	logger       *logger.Logger
}

func NewSettingsService(settingsRepo interfaces.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

func (s *settingsService) GetStore(ctx context.Context) (*models.StoreSettings, error) {
	return s.settingsRepo.GetStore(ctx)
}

// UpdateStore merges section by section: only the hero and theme documents
// present in the request replace their stored counterparts.
func (s *settingsService) UpdateStore(ctx context.Context, req *models.UpdateStoreSettingsRequest) (*models.StoreSettings, error) {
	current, err := s.settingsRepo.GetStore(ctx)
	if err != nil {
		return nil, err
	}

	if req.Hero != nil {
		current.Hero = req.Hero
	}
	if req.Theme != nil {
		current.Theme = req.Theme
	}

	if err := s.settingsRepo.PutStore(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

func (s *settingsService) GetPayments(ctx context.Context) (*models.PaymentSettings, error) {
	return s.settingsRepo.GetPayments(ctx)
}

// UpdatePayments replaces only the method sections present in the request;
// the rest keep their stored config.
func (s *settingsService) UpdatePayments(ctx context.Context, req *models.UpdatePaymentSettingsRequest) (*models.PaymentSettings, error) {
	current, err := s.settingsRepo.GetPayments(ctx)
	if err != nil {
		return nil, err
	}

	if req.Paypal != nil {
		current.Paypal = *req.Paypal
	}
	if req.Stripe != nil {
		current.Stripe = *req.Stripe
	}
	if req.COD != nil {
		current.COD = *req.COD
	}
	if req.Bank != nil {
		current.Bank = *req.Bank
	}

	if err := s.settingsRepo.PutPayments(ctx, current); err != nil {
		return nil, err
	}

	s.logger.Info("Payment settings updated")

	return current, nil
}
