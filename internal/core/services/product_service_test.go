package services_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	"github.com/SscSPs/product_catalog/internal/core/domain"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/core/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	mockRateService *MockExchangeRateService
	clock           *fakeClock
	service         portssvc.ProductSvcFacade
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockRateService = new(MockExchangeRateService)
	suite.clock = newFakeClock()
	suite.service = services.NewProductService(
		suite.mockProductRepo,
		suite.mockRateService,
		services.WithClock(suite.clock.Now),
	)
}

func (suite *ProductServiceTestSuite) TestParseProducts() {
	rows := []dto.RawProductRow{
		{Line: 2, Name: "Milk #promo", Price: "$3.99", Expiration: "1/5/2025"},
		{Line: 3, Name: "Bread", Price: "abc", Expiration: "01/05/2025"},
		{Line: 4, Name: "Eggs", Price: "$2.50", Expiration: "13/2024"},
		{Line: 5, Name: "Cheese", Price: "$5.00", Expiration: "02/30/2024"},
		{Line: 6, Name: "Free sample", Price: "$0.00", Expiration: "03/01/2025"},
		{Line: 7, Name: "#only a comment", Price: "$1.00", Expiration: "03/01/2025"},
		{Line: 8, Name: "Refund", Price: "-1", Expiration: "03/01/2025"},
		{Line: 9, Name: "Butter", Price: " 12 ", Expiration: "12/31/2026"},
		{Line: 10, Name: "Huge", Price: "$1e400", Expiration: "01/01/2026"},
		{Line: 11, Name: "  Jam  # seasonal", Price: "$4.25", Expiration: "06/30/2026"},
	}

	got := suite.service.ParseProducts(context.Background(), rows)

	suite.Equal([]dto.CreateProductRequest{
		{Name: "Milk", Price: 3.99, Expiration: "2025-01-05"},
		{Name: "Butter", Price: 12, Expiration: "2026-12-31"},
		{Name: "Jam", Price: 4.25, Expiration: "2026-06-30"},
	}, got)
}

func (suite *ProductServiceTestSuite) TestParseProducts_EmptyInput() {
	got := suite.service.ParseProducts(context.Background(), nil)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_Success() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Milk", Price: 3.999, Expiration: "2025-01-05"}
	rates := []domain.ExchangeRate{{CurrencyCode: "EUR", Conversion: decimal.RequireFromString("3.60")}}

	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()
	suite.mockRateService.On("CreateExchangeRates", ctx, mock.AnythingOfType("domain.Product")).Return(rates).Once()

	product := suite.service.CreateProduct(ctx, req)

	suite.Require().NotNil(product)
	suite.NotEmpty(product.ProductID)
	suite.Equal("Milk", product.Name)
	suite.Equal("4.00", product.Price.StringFixed(2))
	suite.Equal(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), product.Expiration)
	suite.Equal(suite.clock.Now(), product.CreatedAt)
	suite.Equal(rates, product.ExchangeRates)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ExistsProductByName", mock.Anything, mock.Anything)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_SaveFails() {
	ctx := context.Background()
	req := dto.CreateProductRequest{Name: "Milk", Price: 3.99, Expiration: "2025-01-05"}
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(errors.New("db down")).Once()

	product := suite.service.CreateProduct(ctx, req)

	suite.Nil(product)
	suite.mockRateService.AssertNotCalled(suite.T(), "CreateExchangeRates", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_InvalidRequest() {
	product := suite.service.CreateProduct(context.Background(), dto.CreateProductRequest{Name: "Milk", Price: 0, Expiration: "2025-01-05"})

	suite.Nil(product)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NonFinitePrice() {
	for _, price := range []float64{math.Inf(1), math.NaN()} {
		product := suite.service.CreateProduct(context.Background(), dto.CreateProductRequest{Name: "Milk", Price: price, Expiration: "2025-01-05"})
		suite.Nil(product)
	}
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateGuard() {
	ctx := context.Background()
	svc := services.NewProductService(suite.mockProductRepo, suite.mockRateService, services.WithDuplicateNameGuard(true))
	suite.mockProductRepo.On("ExistsProductByName", ctx, "Milk").Return(true, nil).Once()

	product := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Milk", Price: 3.99, Expiration: "2025-01-05"})

	suite.Nil(product)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateGuardAllowsNewName() {
	ctx := context.Background()
	svc := services.NewProductService(suite.mockProductRepo, suite.mockRateService, services.WithDuplicateNameGuard(true))
	suite.mockProductRepo.On("ExistsProductByName", ctx, "Milk").Return(false, nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()
	suite.mockRateService.On("CreateExchangeRates", ctx, mock.AnythingOfType("domain.Product")).Return([]domain.ExchangeRate{}).Once()

	product := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Milk", Price: 3.99, Expiration: "2025-01-05"})

	suite.NotNil(product)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_Defaults() {
	ctx := context.Background()
	page := &domain.ProductPage{Products: []domain.Product{}, TotalCount: 0}
	suite.mockProductRepo.On("QueryProducts", ctx, domain.ProductFilter{
		Limit:  10,
		Offset: 0,
		Order:  domain.SortAsc,
	}).Return(page, nil).Once()

	resp, err := suite.service.ListProducts(ctx, dto.ListProductsParams{})

	suite.Require().NoError(err)
	suite.Equal(1, resp.Page)
	suite.Equal(10, resp.Limit)
	suite.Equal(0, resp.Total)
	suite.NotNil(resp.Products)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_FilterMapping() {
	ctx := context.Background()
	params := dto.ListProductsParams{
		Page:          2,
		Limit:         5,
		Name:          " milk ",
		MinPrice:      1.5,
		MinExpiration: "2025-01-01",
		SortBy:        "price",
		Order:         "DESC",
	}
	product := domain.Product{ProductID: uuid.NewString(), Name: "Milk", Price: decimal.RequireFromString("3.99")}
	page := &domain.ProductPage{Products: []domain.Product{product}, TotalCount: 6}

	suite.mockProductRepo.On("QueryProducts", ctx, mock.MatchedBy(func(f domain.ProductFilter) bool {
		return f.Limit == 5 && f.Offset == 5 &&
			f.Name != nil && *f.Name == "milk" &&
			f.MinPrice != nil && f.MinPrice.Equal(decimal.RequireFromString("1.5")) &&
			f.MaxPrice == nil &&
			f.MinExpiration != nil && f.MinExpiration.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.MaxExpiration == nil &&
			f.SortBy == domain.SortByPrice && f.Order == domain.SortDesc
	})).Return(page, nil).Once()

	resp, err := suite.service.ListProducts(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(2, resp.Page)
	suite.Equal(5, resp.Limit)
	suite.Equal(6, resp.Total)
	suite.Require().Len(resp.Products, 1)
	suite.Equal("Milk", resp.Products[0].Name)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestListProducts_RepositoryError() {
	ctx := context.Background()
	suite.mockProductRepo.On("QueryProducts", ctx, mock.Anything).Return(nil, errors.New("timeout")).Once()

	resp, err := suite.service.ListProducts(ctx, dto.ListProductsParams{})

	suite.Error(err)
	suite.Nil(resp)
}

func (suite *ProductServiceTestSuite) TestListProducts_InvalidSortField() {
	resp, err := suite.service.ListProducts(context.Background(), dto.ListProductsParams{SortBy: "created_at"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(resp)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "QueryProducts", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestGetProductByID() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockProductRepo.On("FindProductByID", ctx, id).Return(&domain.Product{ProductID: id}, nil).Once()

	product, err := suite.service.GetProductByID(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(id, product.ProductID)
}

func (suite *ProductServiceTestSuite) TestGetProductByID_MalformedID() {
	product, err := suite.service.GetProductByID(context.Background(), "not-a-uuid")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(product)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "FindProductByID", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_NotFound() {
	ctx := context.Background()
	id := uuid.NewString()
	suite.mockProductRepo.On("DeleteProduct", ctx, id).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteProduct(ctx, id)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func TestNewRequestValidator_UsesBindingTags(t *testing.T) {
	v := services.NewRequestValidator()

	tests := []struct {
		name    string
		req     dto.CreateProductRequest
		wantErr bool
	}{
		{"valid", dto.CreateProductRequest{Name: "Milk", Price: 0.01, Expiration: "2025-01-05"}, false},
		{"missing name", dto.CreateProductRequest{Price: 1, Expiration: "2025-01-05"}, true},
		{"price below minimum", dto.CreateProductRequest{Name: "Milk", Price: 0.009, Expiration: "2025-01-05"}, true},
		{"not a calendar date", dto.CreateProductRequest{Name: "Milk", Price: 1, Expiration: "2025-02-30"}, true},
		{"wrong layout", dto.CreateProductRequest{Name: "Milk", Price: 1, Expiration: "01/05/2025"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
