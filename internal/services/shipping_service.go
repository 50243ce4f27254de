package services

import (
	"context"
	"fmt"

	"github.com/agatodfddd/luxora-store/internal/models"
	"github.com/agatodfddd/luxora-store/internal/repositories/interfaces"
	"github.com/agatodfddd/luxora-store/internal/utils"
	"github.com/agatodfddd/luxora-store/pkg/logger"
)

type ShippingService interface {
	// Quote computes the shipping cost for a destination against the
	// current settings. ErrNoShippingZone when nothing covers the country.
	Quote(ctx context.Context, country string, itemCount int, subtotal float64) (float64, *models.ShippingZone, error)

	GetSettings(ctx context.Context) (*models.ShippingSettings, error)
	UpdateSettings(ctx context.Context, settings *models.ShippingSettings) (*models.ShippingSettings, error)
}

type shippingService struct {
	settingsRepo interfaces.SettingsRepository
	logger       *logger.Logger
}

func NewShippingService(settingsRepo interfaces.SettingsRepository, logger *logger.Logger) ShippingService {
	return &shippingService{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// QuoteForSettings is the pure calculator: first zone whose country list
// contains the destination (or "*") wins, cost = base + perItem*itemCount,
// and a subtotal at or above freeOver ships free. Identical inputs always
// produce identical costs.
func QuoteForSettings(settings *models.ShippingSettings, country string, itemCount int, subtotal float64) (float64, *models.ShippingZone, error) {
	for i := range settings.Zones {
		zone := &settings.Zones[i]
		if !zone.Matches(country) {
			continue
		}

		cost := zone.Base + zone.PerItem*float64(itemCount)
		if zone.FreeOver > 0 && subtotal >= zone.FreeOver {
			cost = 0
		}

		return utils.RoundMoney(cost), zone, nil
	}

	return 0, nil, fmt.Errorf("country %q: %w", country, ErrNoShippingZone)
}

func (s *shippingService) Quote(ctx context.Context, country string, itemCount int, subtotal float64) (float64, *models.ShippingZone, error) {
	settings, err := s.settingsRepo.GetShipping(ctx)
	if err != nil {
		return 0, nil, err
	}

	return QuoteForSettings(settings, country, itemCount, subtotal)
}

func (s *shippingService) GetSettings(ctx context.Context) (*models.ShippingSettings, error) {
	return s.settingsRepo.GetShipping(ctx)
}

// UpdateSettings replaces the configuration wholesale; there is no partial
// merge for shipping zones.
func (s *shippingService) UpdateSettings(ctx context.Context, settings *models.ShippingSettings) (*models.ShippingSettings, error) {
	if settings.Currency == "" {
		settings.Currency = utils.DefaultCurrency
	}

	for i := range settings.Zones {
		if settings.Zones[i].ID == "" {
			settings.Zones[i].ID = utils.GenerateID(utils.ZoneIDPrefix)
		}
	}

	if err := s.settingsRepo.PutShipping(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.WithField("zones", len(settings.Zones)).Info("Shipping settings replaced")

	return settings, nil
}
