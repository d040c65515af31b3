package external

import (
	"context"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
)

// ConversionTableFetcher loads the base currency's conversion table from remote sources.
// When every source fails the result is an empty table; that is a normal outcome, not an error.
type ConversionTableFetcher interface {
	FetchConversionTable(ctx context.Context) domain.ConversionTable
}

// RateCache stores conversion tables under a key for a limited time.
type RateCache interface {
	// Get returns the table stored under key, and false when it is missing or expired.
	Get(ctx context.Context, key string) (domain.ConversionTable, bool, error)

	// Set stores table under key for ttl.
	Set(ctx context.Context, key string, table domain.ConversionTable, ttl time.Duration) error
}
