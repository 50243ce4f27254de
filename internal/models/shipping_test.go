package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingZoneMatches(t *testing.T) {
	zone := ShippingZone{Countries: []string{"MA", "FR"}}

	assert.True(t, zone.Matches("MA"))
	assert.True(t, zone.Matches("ma"))
	assert.True(t, zone.Matches("Fr"))
	assert.False(t, zone.Matches("DE"))
	assert.False(t, zone.Matches(""))

	wildcard := ShippingZone{Countries: []string{"*"}}
	assert.True(t, wildcard.Matches("JP"))
	assert.True(t, wildcard.Matches(""))

	empty := ShippingZone{}
	assert.False(t, empty.Matches("MA"))
}
