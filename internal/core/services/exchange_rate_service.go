package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/utils/money"
	"github.com/google/uuid"
)

// CurrenciesCacheKey is the cache key of the conversion table.
const CurrenciesCacheKey = "currencies"

// exchangeRateService converts product prices with the cached conversion table.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateWriter
	fetcher  external.ConversionTableFetcher
	cache    external.RateCache
	ttl      time.Duration
	now      func() time.Time
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateWriter,
	fetcher external.ConversionTableFetcher,
	cache external.RateCache,
	ttl time.Duration,
) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo: rateRepo,
		fetcher:  fetcher,
		cache:    cache,
		ttl:      ttl,
		now:      time.Now,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// LoadCurrencies returns the cached table, or fetches and caches a fresh one.
// An empty fetch result is stored too, but it is never served as a hit,
// so every call refetches until a source answers.
func (s *exchangeRateService) LoadCurrencies(ctx context.Context) domain.ConversionTable {
	cached, ok, err := s.cache.Get(ctx, CurrenciesCacheKey)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read conversion table from cache")
	}
	if ok && !cached.IsEmpty() {
		return cached
	}

	table := s.fetcher.FetchConversionTable(ctx)
	if table == nil {
		table = domain.ConversionTable{}
	}
	if err := s.cache.Set(ctx, CurrenciesCacheKey, table, s.ttl); err != nil {
		s.LogWarn(ctx, err, "Failed to store conversion table in cache")
	}
	s.LogDebug(ctx, "Conversion table refreshed", slog.Int("currencies", len(table)))
	return table
}

// ComputeRates converts product.Price with each rate, keeping table order.
func (s *exchangeRateService) ComputeRates(product domain.Product, table domain.ConversionTable) []domain.ExchangeRate {
	now := s.now()
	rates := make([]domain.ExchangeRate, 0, len(table))
	for _, entry := range table {
		rates = append(rates, domain.ExchangeRate{
			ExchangeRateID: uuid.NewString(),
			ProductID:      product.ProductID,
			CurrencyCode:   strings.ToUpper(entry.CurrencyCode),
			Conversion:     money.Convert(product.Price, entry.Rate),
			CreatedAt:      now,
		})
	}
	return rates
}

// CreateExchangeRates stores one rate per currency. A failed currency is logged and skipped.
func (s *exchangeRateService) CreateExchangeRates(ctx context.Context, product domain.Product) []domain.ExchangeRate {
	table := s.LoadCurrencies(ctx)
	if table.IsEmpty() {
		s.LogInfo(ctx, "Conversion table unavailable, product stored without exchange rates",
			slog.String("product_id", product.ProductID))
		return []domain.ExchangeRate{}
	}

	computed := s.ComputeRates(product, table)
	stored := make([]domain.ExchangeRate, 0, len(computed))
	for _, rate := range computed {
		if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
			s.LogWarn(ctx, fmt.Errorf("failed to save %s rate: %w", rate.CurrencyCode, err),
				"Skipping exchange rate",
				slog.String("product_id", product.ProductID),
				slog.String("currency", rate.CurrencyCode))
			continue
		}
		stored = append(stored, rate)
	}
	return stored
}
