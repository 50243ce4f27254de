package models

import "strings"

// ShippingZone binds a flat rate to a set of destination country codes.
// The wildcard "*" matches any destination. FreeOver of 0 means the zone
// never ships free.
type ShippingZone struct {
	ID        string   `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	Countries []string `json:"countries" bson:"countries"`
	Base      float64  `json:"base" bson:"base" validate:"gte=0"`
	PerItem   float64  `json:"perItem" bson:"per_item" validate:"gte=0"`
	FreeOver  float64  `json:"freeOver" bson:"free_over" validate:"gte=0"`
}

// Matches reports whether this zone covers the destination country code.
func (z *ShippingZone) Matches(country string) bool {
	for _, c := range z.Countries {
		if c == "*" || strings.EqualFold(c, country) {
			return true
		}
	}
	return false
}

// ShippingSettings is admin-edited configuration read on every quote.
// Zones are order-sensitive: the first matching zone wins, overlapping
// coverage is resolved by list position.
type ShippingSettings struct {
	Currency string         `json:"currency" bson:"currency"`
	Zones    []ShippingZone `json:"zones" bson:"zones"`
}
