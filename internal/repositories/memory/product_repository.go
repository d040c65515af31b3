// Package memory holds process-local repositories used when no database is configured.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	"github.com/SscSPs/product_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
)

// Store keeps products and their exchange rates in memory.
// It answers catalog queries with the same filter, order and paging rules as the SQL store.
type Store struct {
	mu       sync.RWMutex
	products []domain.Product // insertion order
	rates    map[string][]domain.ExchangeRate
}

var (
	_ portsrepo.ProductRepositoryFacade      = (*Store)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade = (*Store)(nil)
)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{rates: make(map[string][]domain.ExchangeRate)}
}

// NewRepositoryProvider backs every repository with one shared Store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore()
	return portsrepo.RepositoryProvider{
		ProductRepo:      store,
		ExchangeRateRepo: store,
	}
}

func (s *Store) indexOf(productID string) int {
	return slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ProductID == productID })
}

// SaveProduct stores a product without its rates.
func (s *Store) SaveProduct(_ context.Context, product domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(product.ProductID) >= 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrDuplicate, product.ProductID)
	}
	product.ExchangeRates = nil
	s.products = append(s.products, product)
	return nil
}

// SaveExchangeRate stores a rate for an existing product.
func (s *Store) SaveExchangeRate(_ context.Context, rate domain.ExchangeRate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(rate.ProductID) < 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, rate.ProductID)
	}
	rate.CurrencyCode = strings.ToUpper(rate.CurrencyCode)
	s.rates[rate.ProductID] = append(s.rates[rate.ProductID], rate)
	return nil
}

// ExistsProductByName reports whether a product with exactly this name exists.
func (s *Store) ExistsProductByName(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.ContainsFunc(s.products, func(p domain.Product) bool { return p.Name == name }), nil
}

// FindProductByID returns a copy of the product with its rates.
func (s *Store) FindProductByID(_ context.Context, productID string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(productID)
	if i < 0 {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	product := s.withRates(s.products[i])
	return &product, nil
}

// DeleteProduct removes a product and its rates.
func (s *Store) DeleteProduct(_ context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	s.products = slices.Delete(s.products, i, i+1)
	delete(s.rates, productID)
	return nil
}

// QueryProducts filters, orders and pages the stored products.
func (s *Store) QueryProducts(_ context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	var column func(a, b domain.Product) int
	switch filter.SortBy {
	case "":
	case domain.SortByName:
		column = func(a, b domain.Product) int { return strings.Compare(a.Name, b.Name) }
	case domain.SortByPrice:
		column = func(a, b domain.Product) int { return a.Price.Cmp(b.Price) }
	case domain.SortByExpiration:
		column = func(a, b domain.Product) int { return a.Expiration.Compare(b.Expiration) }
	default:
		return nil, fmt.Errorf("%w: unsupported sort field %q", apperrors.ErrValidation, filter.SortBy)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if matches(p, filter) {
			matched = append(matched, p)
		}
	}

	slices.SortStableFunc(matched, func(a, b domain.Product) int {
		if column != nil {
			c := column(a, b)
			if filter.Order == domain.SortDesc {
				c = -c
			}
			if c != 0 {
				return c
			}
			return strings.Compare(a.ProductID, b.ProductID)
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ProductID, b.ProductID)
	})

	total := len(matched)
	start := min(max(filter.Offset, 0), total)
	end := total
	if filter.Limit > 0 {
		end = min(start+filter.Limit, total)
	}

	products := make([]domain.Product, 0, end-start)
	for _, p := range matched[start:end] {
		products = append(products, s.withRates(p))
	}
	return &domain.ProductPage{Products: products, TotalCount: total}, nil
}

// withRates copies p and attaches its rates ordered by currency code. Callers hold the lock.
func (s *Store) withRates(p domain.Product) domain.Product {
	rates := slices.Clone(s.rates[p.ProductID])
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	slices.SortFunc(rates, func(a, b domain.ExchangeRate) int {
		return cmp.Compare(a.CurrencyCode, b.CurrencyCode)
	})
	p.ExchangeRates = rates
	return p
}

func matches(p domain.Product, f domain.ProductFilter) bool {
	if f.Name != nil && *f.Name != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinExpiration != nil && p.Expiration.Before(*f.MinExpiration) {
		return false
	}
	if f.MaxExpiration != nil && p.Expiration.After(*f.MaxExpiration) {
		return false
	}
	return true
}
