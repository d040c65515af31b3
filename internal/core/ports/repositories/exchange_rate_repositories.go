package repositories

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
)

// ExchangeRateWriter defines write operations for exchange rate data.
// Rates are read back together with their product through ProductReader.
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a single rate record for an existing product.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateWriter
}
