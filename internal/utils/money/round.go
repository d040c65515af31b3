package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the symbol carried by canonical (USD) price cells.
const DefaultSymbol = "$"

// Round2 rounds to two decimal places, halves away from zero.
// Example: 10.005 returns 10.01, -10.005 returns -10.01.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Convert multiplies a canonical price by a rate and rounds the result with Round2.
// The rate goes through its shortest decimal representation, so 0.9 is exactly 0.9.
func Convert(price decimal.Decimal, rate float64) decimal.Decimal {
	return Round2(price.Mul(decimal.NewFromFloat(rate)))
}

// ParsePrice removes the first occurrence of symbol from raw and parses what is left.
func ParsePrice(raw, symbol string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.Replace(strings.TrimSpace(raw), symbol, "", 1))
	return decimal.NewFromString(cleaned)
}
