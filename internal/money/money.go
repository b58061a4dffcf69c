// Package money keeps the display rules for amounts in one place:
// everything is decimal, rounded half-up to cents.
package money

import "github.com/shopspring/decimal"

// Round normalizes an amount to 2 decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders an amount for display, e.g. "$18.99".
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Mul returns unit price times quantity.
func Mul(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
