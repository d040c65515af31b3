package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the price of a product converted into one currency at creation time.
// Conversions are a snapshot and are never recomputed when rates change.
type ExchangeRate struct {
	ExchangeRateID string          `json:"id"`
	ProductID      string          `json:"productID"`
	CurrencyCode   string          `json:"currency"`
	Conversion     decimal.Decimal `json:"conversion"`
	CreatedAt      time.Time       `json:"createdAt"`
}
