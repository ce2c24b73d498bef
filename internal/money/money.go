// Package money holds the shared amount validation and rounding rules.
//
// Every monetary value in the system is a decimal with at most two
// fractional digits. Near-zero comparisons (split validation, balance
// display) all use the same one-cent Tolerance so the policy cannot
// drift between components.
package money

import "github.com/shopspring/decimal"

// Tolerance is the one-cent threshold applied uniformly: split sums
// must reconcile within it, and balances below it are treated as settled.
var Tolerance = decimal.New(1, -2)

// Hundred is used for percentage math.
var Hundred = decimal.NewFromInt(100)

// Valid reports whether d is representable in minor currency units,
// i.e. has at most two fractional digits.
func Valid(d decimal.Decimal) bool {
	return d.Equal(d.Round(2))
}

// Cents converts a valid amount to minor currency units.
// The caller must have checked Valid first; extra digits are truncated.
func Cents(d decimal.Decimal) int64 {
	return d.Shift(2).IntPart()
}

// FromCents converts minor currency units back to a decimal amount.
func FromCents(c int64) decimal.Decimal {
	return decimal.New(c, -2)
}

// Round2 rounds to the minor currency unit, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
