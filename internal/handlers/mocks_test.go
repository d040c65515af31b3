package handlers_test

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductService ---
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListProductsResponse), args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) *domain.Product {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Product)
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductService) ParseProducts(ctx context.Context, rows []dto.RawProductRow) []dto.CreateProductRequest {
	args := m.Called(ctx, rows)
	return args.Get(0).([]dto.CreateProductRequest)
}

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) LoadCurrencies(ctx context.Context) domain.ConversionTable {
	args := m.Called(ctx)
	return args.Get(0).(domain.ConversionTable)
}

func (m *MockExchangeRateService) ComputeRates(product domain.Product, table domain.ConversionTable) []domain.ExchangeRate {
	args := m.Called(product, table)
	return args.Get(0).([]domain.ExchangeRate)
}

func (m *MockExchangeRateService) CreateExchangeRates(ctx context.Context, product domain.Product) []domain.ExchangeRate {
	args := m.Called(ctx, product)
	return args.Get(0).([]domain.ExchangeRate)
}

// --- Mock UploadService ---
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) HandleFileUpload(ctx context.Context, data []byte, mimeType string) ([]dto.RawProductRow, error) {
	args := m.Called(ctx, data, mimeType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RawProductRow), args.Error(1)
}

func (m *MockUploadService) ImportProducts(ctx context.Context, data []byte, mimeType string) (int, error) {
	args := m.Called(ctx, data, mimeType)
	return args.Int(0), args.Error(1)
}

// Ensure mocks implement the interfaces
var (
	_ portssvc.ProductSvcFacade      = (*MockProductService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)
	_ portssvc.UploadSvcFacade       = (*MockUploadService)(nil)
)
