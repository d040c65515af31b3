package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	"github.com/SscSPs/product_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_catalog/internal/core/ports/services"
	"github.com/SscSPs/product_catalog/internal/dto"
	"github.com/SscSPs/product_catalog/internal/utils/dates"
	"github.com/SscSPs/product_catalog/internal/utils/money"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// nameComment matches a trailing "# comment" and the whitespace before it.
var nameComment = regexp.MustCompile(`\s*#.*$`)

type productService struct {
	BaseService
	productRepo      portsrepo.ProductRepositoryFacade
	rateService      portssvc.ExchangeRateWriterSvc
	validate         *validator.Validate
	rejectDuplicates bool
	now              func() time.Time
}

// ProductServiceOption is a functional option for configuring the product service
type ProductServiceOption func(*productService)

// WithDuplicateNameGuard makes CreateProduct refuse names that are already stored.
func WithDuplicateNameGuard(enabled bool) ProductServiceOption {
	return func(s *productService) {
		s.rejectDuplicates = enabled
	}
}

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) ProductServiceOption {
	return func(s *productService) {
		s.now = now
	}
}

// NewProductService creates a new product service with the provided options
func NewProductService(
	productRepo portsrepo.ProductRepositoryFacade,
	rateService portssvc.ExchangeRateWriterSvc,
	options ...ProductServiceOption,
) portssvc.ProductSvcFacade {
	svc := &productService{
		productRepo: productRepo,
		rateService: rateService,
		validate:    NewRequestValidator(),
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// NewRequestValidator returns a validator reading the same `binding` tags gin uses,
// so CSV rows and JSON requests share one rule set.
func NewRequestValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ParseProducts normalizes raw rows into product requests. Invalid rows are logged and dropped.
func (s *productService) ParseProducts(ctx context.Context, rows []dto.RawProductRow) []dto.CreateProductRequest {
	valid := make([]dto.CreateProductRequest, 0, len(rows))
	for _, row := range rows {
		req, err := s.normalizeRow(row)
		if err != nil {
			s.LogWarn(ctx, err, "Skipping invalid product row",
				slog.Int("line", row.Line),
				slog.String("name", row.Name),
				slog.String("price", row.Price),
				slog.String("expiration", row.Expiration))
			continue
		}
		valid = append(valid, req)
	}
	return valid
}

func (s *productService) normalizeRow(row dto.RawProductRow) (dto.CreateProductRequest, error) {
	name := strings.TrimSpace(nameComment.ReplaceAllString(row.Name, ""))

	price, err := money.ParsePrice(row.Price, money.DefaultSymbol)
	if err != nil {
		return dto.CreateProductRequest{}, fmt.Errorf("%w: price %q is not a number", apperrors.ErrValidation, row.Price)
	}

	expiration, err := dates.FormatDateToISO(row.Expiration)
	if err != nil {
		return dto.CreateProductRequest{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	amount := price.InexactFloat64()
	if !isFinite(amount) {
		return dto.CreateProductRequest{}, fmt.Errorf("%w: price %q is out of range", apperrors.ErrValidation, row.Price)
	}

	req := dto.CreateProductRequest{
		Name:       name,
		Price:      amount,
		Expiration: expiration,
	}
	if err := s.validate.Struct(req); err != nil {
		return dto.CreateProductRequest{}, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return req, nil
}

// CreateProduct stores a product and then its exchange rates.
// It returns nil when nothing was stored; the reason is logged.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) *domain.Product {
	if !isFinite(req.Price) {
		s.LogWarn(ctx, fmt.Errorf("%w: price is out of range", apperrors.ErrValidation),
			"Rejected invalid product", slog.String("name", req.Name))
		return nil
	}
	if err := s.validate.Struct(req); err != nil {
		s.LogWarn(ctx, err, "Rejected invalid product", slog.String("name", req.Name))
		return nil
	}
	expiration, err := dates.ParseISO(req.Expiration)
	if err != nil {
		s.LogWarn(ctx, err, "Rejected product with invalid expiration", slog.String("name", req.Name))
		return nil
	}

	if s.rejectDuplicates {
		exists, err := s.productRepo.ExistsProductByName(ctx, req.Name)
		if err != nil {
			s.LogError(ctx, err, "Failed to check product name", slog.String("name", req.Name))
			return nil
		}
		if exists {
			s.LogWarn(ctx, fmt.Errorf("%w: product %q already exists", apperrors.ErrDuplicate, req.Name),
				"Rejected duplicate product", slog.String("name", req.Name))
			return nil
		}
	}

	product := domain.Product{
		ProductID:  uuid.NewString(),
		Name:       req.Name,
		Price:      money.Round2(decimal.NewFromFloat(req.Price)),
		Expiration: expiration,
		CreatedAt:  s.now(),
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to store product", slog.String("name", req.Name))
		return nil
	}

	product.ExchangeRates = s.rateService.CreateExchangeRates(ctx, product)
	s.LogDebug(ctx, "Product stored",
		slog.String("product_id", product.ProductID),
		slog.Int("exchange_rates", len(product.ExchangeRates)))
	return &product
}

// GetProductByID retrieves a product with its exchange rates.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
	}
	return product, nil
}

// DeleteProduct removes a product and, through the store, its exchange rates.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := uuid.Parse(productID); err != nil {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return nil
}

// ListProducts applies defaults to params and runs the catalog query.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) (*dto.ListProductsResponse, error) {
	page, limit := params.Page, params.Limit
	if page <= 0 {
		page = defaultPage
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	filter, err := toProductFilter(params, page, limit)
	if err != nil {
		return nil, err
	}

	result, err := s.productRepo.QueryProducts(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to query products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	resp := dto.ToListProductsResponse(result, page, limit)
	return &resp, nil
}

// toProductFilter maps query params to a filter. Zero and empty values are unset.
func toProductFilter(params dto.ListProductsParams, page, limit int) (domain.ProductFilter, error) {
	filter := domain.ProductFilter{
		Limit:  limit,
		Offset: (page - 1) * limit,
		Order:  domain.SortAsc,
	}

	if name := strings.TrimSpace(params.Name); name != "" {
		filter.Name = &name
	}
	if params.MinPrice > 0 {
		v := decimal.NewFromFloat(params.MinPrice)
		filter.MinPrice = &v
	}
	if params.MaxPrice > 0 {
		v := decimal.NewFromFloat(params.MaxPrice)
		filter.MaxPrice = &v
	}
	if params.MinExpiration != "" {
		t, err := dates.ParseISO(params.MinExpiration)
		if err != nil {
			return filter, fmt.Errorf("%w: minExpiration must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.MinExpiration = &t
	}
	if params.MaxExpiration != "" {
		t, err := dates.ParseISO(params.MaxExpiration)
		if err != nil {
			return filter, fmt.Errorf("%w: maxExpiration must be YYYY-MM-DD", apperrors.ErrValidation)
		}
		filter.MaxExpiration = &t
	}
	if params.SortBy != "" {
		field := domain.ProductSortField(params.SortBy)
		if !field.IsValid() {
			return filter, fmt.Errorf("%w: unsupported sortBy %q", apperrors.ErrValidation, params.SortBy)
		}
		filter.SortBy = field
	}
	if strings.EqualFold(params.Order, string(domain.SortDesc)) {
		filter.Order = domain.SortDesc
	}
	return filter, nil
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
