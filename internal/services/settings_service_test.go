package services

import (
	"context"
	"testing"

	"github.com/agatodfddd/luxora-store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStoreSettingsMergesSections(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewSettingsService(repo, testLogger())
	ctx := context.Background()

	_, err := service.UpdateStore(ctx, &models.UpdateStoreSettingsRequest{
		Hero:  map[string]interface{}{"title": "Summer drop"},
		Theme: map[string]interface{}{"accent": "#b8860b"},
	})
	require.NoError(t, err)

	// A request carrying only hero leaves theme untouched.
	updated, err := service.UpdateStore(ctx, &models.UpdateStoreSettingsRequest{
		Hero: map[string]interface{}{"title": "Autumn drop"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Autumn drop", updated.Hero["title"])
	assert.Equal(t, "#b8860b", updated.Theme["accent"])
}

func TestUpdatePaymentSettingsReplacesPerSection(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewSettingsService(repo, testLogger())
	ctx := context.Background()

	_, err := service.UpdatePayments(ctx, &models.UpdatePaymentSettingsRequest{
		COD:  &models.CODConfig{Enabled: true, Note: "Cash on delivery"},
		Bank: &models.BankConfig{Enabled: true, IBAN: "MA00 0000"},
	})
	require.NoError(t, err)

	updated, err := service.UpdatePayments(ctx, &models.UpdatePaymentSettingsRequest{
		Paypal: &models.PaypalConfig{Enabled: true, Email: "pay@example.com"},
	})
	require.NoError(t, err)

	assert.True(t, updated.Paypal.Enabled)
	assert.True(t, updated.COD.Enabled)
	assert.Equal(t, "MA00 0000", updated.Bank.IBAN)
	assert.False(t, updated.Stripe.Enabled)
}

func TestGetSettingsBeforeFirstWrite(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewSettingsService(repo, testLogger())

	store, err := service.GetStore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, store.Hero)

	payments, err := service.GetPayments(context.Background())
	require.NoError(t, err)
	assert.False(t, payments.COD.Enabled)
}
