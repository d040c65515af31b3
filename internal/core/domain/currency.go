package domain

import "strings"

// CurrencyRate is the number of units of a currency per one unit of the base currency.
type CurrencyRate struct {
	CurrencyCode string  `json:"currency"`
	Rate         float64 `json:"rate"`
}

// ConversionTable maps currency codes to rates, keeping the order the entries were added in.
// An empty table means "no rates available", never "rates of zero".
type ConversionTable []CurrencyRate

// IsEmpty reports whether the table holds no usable rates.
func (t ConversionTable) IsEmpty() bool {
	return len(t) == 0
}

// Rate returns the rate for code (case-insensitive) and whether it is present.
func (t ConversionTable) Rate(code string) (float64, bool) {
	for _, cr := range t {
		if strings.EqualFold(cr.CurrencyCode, code) {
			return cr.Rate, true
		}
	}
	return 0, false
}

// Project keeps only the codes in supported, in the order of supported.
// Codes missing from t are left out rather than being given a zero rate.
func (t ConversionTable) Project(supported []string) ConversionTable {
	projected := make(ConversionTable, 0, len(supported))
	for _, code := range supported {
		if rate, ok := t.Rate(code); ok {
			projected = append(projected, CurrencyRate{CurrencyCode: code, Rate: rate})
		}
	}
	return projected
}
