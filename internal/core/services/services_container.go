package services

import (
	"github.com/SscSPs/product_catalog/internal/core/ports/external"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	fetcher external.ConversionTableFetcher,
	cache external.RateCache,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Rates first, products convert their price through it
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, fetcher, cache, cfg.RatesCacheTTL)
	container.Product = NewProductService(
		repos.ProductRepo,
		container.ExchangeRate,
		WithDuplicateNameGuard(cfg.RejectDuplicateNames),
	)
	container.Upload = NewUploadService(container.Product, cfg.UploadConcurrency)

	return container
}
