package utils

import "math"

// RoundMoney rounds an amount to cents. All totals written to the store go
// through this so the stored invariant total == subtotal - discount +
// shipping survives float arithmetic.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
