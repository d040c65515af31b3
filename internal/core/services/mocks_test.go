package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) QueryProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPage), args.Error(1)
}

func (m *MockProductRepository) ExistsProductByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock ExchangeRateService (writer side) ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ComputeRates(product domain.Product, table domain.ConversionTable) []domain.ExchangeRate {
	args := m.Called(product, table)
	return args.Get(0).([]domain.ExchangeRate)
}

func (m *MockExchangeRateService) CreateExchangeRates(ctx context.Context, product domain.Product) []domain.ExchangeRate {
	args := m.Called(ctx, product)
	return args.Get(0).([]domain.ExchangeRate)
}

// --- Mock ConversionTableFetcher ---
type MockConversionTableFetcher struct {
	mock.Mock
}

func (m *MockConversionTableFetcher) FetchConversionTable(ctx context.Context) domain.ConversionTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConversionTable)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
