package services

import (
	"context"
	"testing"

	"github.com/agatodfddd/luxora-store/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShippingSettings() *models.ShippingSettings {
	return &models.ShippingSettings{
		Currency: "USD",
		Zones: []models.ShippingZone{
			{
				ID:        "z_domestic",
				Name:      "Domestic",
				Countries: []string{"MA"},
				Base:      5,
				PerItem:   1,
				FreeOver:  200,
			},
			{
				ID:        "z_europe",
				Name:      "Europe",
				Countries: []string{"FR", "DE", "ES"},
				Base:      15,
				PerItem:   2.5,
			},
			{
				ID:        "z_world",
				Name:      "Rest of world",
				Countries: []string{"*"},
				Base:      30,
				PerItem:   5,
			},
		},
	}
}

func TestQuoteForSettings(t *testing.T) {
	settings := testShippingSettings()

	t.Run("base plus per item", func(t *testing.T) {
		cost, zone, err := QuoteForSettings(settings, "FR", 3, 50)
		require.NoError(t, err)
		assert.Equal(t, 22.5, cost)
		assert.Equal(t, "Europe", zone.Name)
	})

	t.Run("free shipping at threshold", func(t *testing.T) {
		// freeOver is inclusive: subtotal == threshold ships free.
		cost, _, err := QuoteForSettings(settings, "MA", 3, 200)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("free shipping above threshold", func(t *testing.T) {
		cost, _, err := QuoteForSettings(settings, "MA", 3, 250)
		require.NoError(t, err)
		assert.Equal(t, 0.0, cost)
	})

	t.Run("just below threshold pays full rate", func(t *testing.T) {
		cost, _, err := QuoteForSettings(settings, "MA", 3, 199.99)
		require.NoError(t, err)
		assert.Equal(t, 8.0, cost)
	})

	t.Run("zero threshold never ships free", func(t *testing.T) {
		cost, _, err := QuoteForSettings(settings, "FR", 1, 1000000)
		require.NoError(t, err)
		assert.Equal(t, 17.5, cost)
	})

	t.Run("wildcard zone catches unlisted countries", func(t *testing.T) {
		cost, zone, err := QuoteForSettings(settings, "JP", 2, 80)
		require.NoError(t, err)
		assert.Equal(t, 40.0, cost)
		assert.Equal(t, "Rest of world", zone.Name)
	})

	t.Run("country match is case insensitive", func(t *testing.T) {
		_, zone, err := QuoteForSettings(settings, "ma", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "Domestic", zone.Name)
	})

	t.Run("first matching zone wins", func(t *testing.T) {
		overlapping := &models.ShippingSettings{
			Zones: []models.ShippingZone{
				{Name: "A", Countries: []string{"FR"}, Base: 10},
				{Name: "B", Countries: []string{"FR"}, Base: 99},
			},
		}
		cost, zone, err := QuoteForSettings(overlapping, "FR", 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "A", zone.Name)
		assert.Equal(t, 10.0, cost)
	})

	t.Run("no zone covers the destination", func(t *testing.T) {
		noWildcard := &models.ShippingSettings{
			Zones: []models.ShippingZone{
				{Name: "Domestic", Countries: []string{"MA"}, Base: 5},
			},
		}
		_, _, err := QuoteForSettings(noWildcard, "JP", 1, 10)
		require.Error(t, err)

		domainErr, ok := AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, ErrNoShippingZone.Code, domainErr.Code)
	})

	t.Run("empty zone list rejects everything", func(t *testing.T) {
		_, _, err := QuoteForSettings(&models.ShippingSettings{}, "MA", 1, 10)
		require.Error(t, err)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first, _, err := QuoteForSettings(settings, "DE", 4, 120)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, _, err := QuoteForSettings(settings, "DE", 4, 120)
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})
}

func TestShippingServiceUpdateSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	service := NewShippingService(repo, testLogger())
	ctx := context.Background()

	updated, err := service.UpdateSettings(ctx, &models.ShippingSettings{
		Zones: []models.ShippingZone{
			{Name: "Domestic", Countries: []string{"MA"}, Base: 5},
			{ID: "z_keep", Name: "Europe", Countries: []string{"FR"}, Base: 15},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", updated.Currency)
	assert.NotEmpty(t, updated.Zones[0].ID)
	assert.Equal(t, "z_keep", updated.Zones[1].ID)

	// The replacement is wholesale; a quote sees only the new zones.
	stored, err := service.GetSettings(ctx)
	require.NoError(t, err)
	assert.Len(t, stored.Zones, 2)
}

func TestShippingServiceQuoteUsesStoredSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	require.NoError(t, repo.PutShipping(context.Background(), testShippingSettings()))

	service := NewShippingService(repo, testLogger())

	cost, zone, err := service.Quote(context.Background(), "MA", 2, 50)
	require.NoError(t, err)
	assert.Equal(t, 7.0, cost)
	assert.Equal(t, "Domestic", zone.Name)
}
