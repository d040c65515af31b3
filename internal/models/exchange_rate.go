package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table. Rows are removed with their product.
type ExchangeRate struct {
	ExchangeRateID string          `db:"id"`
	ProductID      string          `db:"product_id"` // FK -> products.id ON DELETE CASCADE
	CurrencyCode   string          `db:"currency_code"`
	Conversion     decimal.Decimal `db:"conversion"` // numeric(12,2)
	CreatedAt      time.Time       `db:"created_at"`
}
