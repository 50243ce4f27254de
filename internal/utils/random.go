package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateID returns a short prefixed record id, e.g. "o_9f2c41ab". The
// stored collections keep this as the public identifier.
func GenerateID(prefix string) string {
	return prefix + randomHex(RecordIDHexChars)
}

func GenerateOrderID() string   { return GenerateID(OrderIDPrefix) }
func GenerateCouponID() string  { return GenerateID(CouponIDPrefix) }
func GenerateReturnID() string  { return GenerateID(ReturnIDPrefix) }
func GenerateProductID() string { return GenerateID(ProductIDPrefix) }
func GenerateTicketID() string  { return GenerateID(TicketIDPrefix) }
func GenerateMessageID() string { return GenerateID(MessageIDPrefix) }

func randomHex(length int) string {
	b := make([]byte, (length+1)/2)
	rand.Read(b)
	return hex.EncodeToString(b)[:length]
}
