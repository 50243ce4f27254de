package interfaces

import (
	"context"

	"github.com/agatodfddd/luxora-store/internal/models"
)

// SettingsRepository stores the singleton configuration documents: shipping
// zones, storefront content, payment method config. Reads of a document
// that was never written return the zero-value settings, not ErrNotFound.
type SettingsRepository interface {
	GetShipping(ctx context.Context) (*models.ShippingSettings, error)
	PutShipping(ctx context.Context, settings *models.ShippingSettings) error

	GetStore(ctx context.Context) (*models.StoreSettings, error)
	PutStore(ctx context.Context, settings *models.StoreSettings) error

	GetPayments(ctx context.Context) (*models.PaymentSettings, error)
	PutPayments(ctx context.Context, settings *models.PaymentSettings) error
}
