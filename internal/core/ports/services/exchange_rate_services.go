package services

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
)

// CurrencyLoaderSvc serves the current conversion table, fetching it when the cache is cold.
type CurrencyLoaderSvc interface {
	LoadCurrencies(ctx context.Context) domain.ConversionTable
}

// ExchangeRateWriterSvc computes and stores a product's exchange rates.
type ExchangeRateWriterSvc interface {
	// ComputeRates converts the product price with every rate in table, in table order.
	ComputeRates(product domain.Product, table domain.ConversionTable) []domain.ExchangeRate

	// CreateExchangeRates computes and persists rates one by one, returning those stored.
	CreateExchangeRates(ctx context.Context, product domain.Product) []domain.ExchangeRate
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	CurrencyLoaderSvc
	ExchangeRateWriterSvc
}
