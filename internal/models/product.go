package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a row of the products table.
type Product struct {
	ProductID  string          `db:"id"`
	Name       string          `db:"name"`
	Price      decimal.Decimal `db:"price"`      // numeric(12,2)
	Expiration time.Time       `db:"expiration"` // date
	CreatedAt  time.Time       `db:"created_at"`
}
