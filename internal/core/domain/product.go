package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry priced in the canonical (base) currency.
type Product struct {
	ProductID     string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`      // Canonical price, two decimals
	Expiration    time.Time       `json:"expiration"` // Calendar date, time part is zero
	ExchangeRates []ExchangeRate  `json:"exchangeRates"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ProductFilter describes a catalog query. Nil pointers mean "no constraint".
type ProductFilter struct {
	Name          *string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	MinExpiration *time.Time
	MaxExpiration *time.Time
	SortBy        ProductSortField // Empty means store-defined order
	Order         SortOrder
	Limit         int
	Offset        int
}

// ProductPage is one page of a catalog query plus the unpaginated match count.
type ProductPage struct {
	Products   []Product
	TotalCount int
}
