package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "linen-summer-shirt", Slugify("Linen Summer Shirt"))
	assert.Equal(t, "shirt-2024", Slugify("  Shirt -- 2024!  "))
	assert.Equal(t, "caf", Slugify("café"))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify(""))
}

func TestGenerateID(t *testing.T) {
	id := GenerateOrderID()
	assert.Len(t, id, len(OrderIDPrefix)+RecordIDHexChars)
	assert.Contains(t, id, OrderIDPrefix)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		next := GenerateCouponID()
		assert.False(t, seen[next], "duplicate id %s", next)
		seen[next] = true
	}
}
