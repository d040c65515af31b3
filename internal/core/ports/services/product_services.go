package services

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog
type ProductReaderSvc interface {
	// GetProductByID retrieves a product with its exchange rates.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts filters, sorts and paginates the catalog.
	ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error)
}

// ProductWriterSvc defines write operations for the catalog
type ProductWriterSvc interface {
	// CreateProduct stores a product and its exchange rates.
	// A nil product means it was not stored; the reason is logged, not returned.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) *domain.Product

	// DeleteProduct removes a product together with its exchange rates.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductNormalizerSvc turns raw CSV rows into validated product requests.
type ProductNormalizerSvc interface {
	// ParseProducts cleans and validates rows, skipping (and logging) the invalid ones.
	ParseProducts(ctx context.Context, rows []dto.RawProductRow) []dto.CreateProductRequest
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
	ProductNormalizerSvc
}
