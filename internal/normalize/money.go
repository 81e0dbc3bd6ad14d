package normalize

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToCents converts a dollar amount to int64 cents, rounding half away from zero.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// FromCents converts int64 cents back to a two-place dollar amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// ParseMoney parses a serialized amount, which must carry exactly two decimals.
func ParseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.StringFixed(2) != s {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not formatted with two decimals", s)
	}
	return d, nil
}
