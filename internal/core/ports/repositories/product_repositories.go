package repositories

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product and its exchange rates.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// QueryProducts returns the page of products matching filter, each with its exchange rates
	// ordered by currency code, plus the number of matches before pagination.
	QueryProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error)

	// ExistsProductByName reports whether a product with exactly this name is stored.
	ExistsProductByName(ctx context.Context, name string) (bool, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product (without its exchange rates).
	SaveProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product; its exchange rates are removed with it.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
