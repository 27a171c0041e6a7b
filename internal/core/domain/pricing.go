package domain

import "math"

const (
	priceBaseCents = 500
	priceSpan      = 2001
)

// PriceFromID maps a catalog item ID to a stable price in [5.00, 25.01].
// The catalog API carries no pricing, so the price must be derivable from
// the ID alone, identically at every display and checkout point. The fold
// reproduces the hash used by the original stored carts and orders, so
// existing records keep their prices.
func PriceFromID(id string) float64 {
	var acc uint32
	for _, r := range id {
		acc = acc*31 + uint32(r)
	}
	cents := priceBaseCents + int64(acc%priceSpan)
	return float64(cents) / 100
}

// Cents converts a two-decimal currency amount to integer cents.
// Totals are summed in cents so float representation error never
// accumulates across lines.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a currency amount.
func FromCents(c int64) float64 {
	return float64(c) / 100
}
