package dto

import (
	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// CreateProductRequest is a validated product ready to be stored.
// The same binding tags are used for JSON requests and for normalized CSV rows.
type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"required,gte=0.01"`
	Expiration string  `json:"expiration" binding:"required,datetime=2006-01-02"` // YYYY-MM-DD
}

// RawProductRow is one CSV data row keyed by the normalized headers.
type RawProductRow struct {
	Line       int    `json:"line"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Expiration string `json:"expiration"`
}

// ListProductsParams are the catalog query parameters.
// Zero values mean "not set", matching how the UI sends empty inputs.
type ListProductsParams struct {
	Page          int     `form:"page" binding:"omitempty,min=1"`
	Limit         int     `form:"limit" binding:"omitempty,min=1,max=100"`
	Name          string  `form:"name"`
	MinPrice      float64 `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice      float64 `form:"maxPrice" binding:"omitempty,gte=0"`
	MinExpiration string  `form:"minExpiration" binding:"omitempty,datetime=2006-01-02"`
	MaxExpiration string  `form:"maxExpiration" binding:"omitempty,datetime=2006-01-02"`
	SortBy        string  `form:"sortBy" binding:"omitempty,oneof=name price expiration"`
	Order         string  `form:"order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// ExchangeRateResponse is a product's price in one currency.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"id"`
	CurrencyCode   string          `json:"currency"`
	Conversion     decimal.Decimal `json:"conversion"`
}

// ProductResponse defines the structure for API responses containing product details.
type ProductResponse struct {
	ProductID     string                 `json:"id"`
	Name          string                 `json:"name"`
	Price         decimal.Decimal        `json:"price"`
	Expiration    string                 `json:"expiration"`
	ExchangeRates []ExchangeRateResponse `json:"exchangeRates"`
}

// ListProductsResponse is one catalog page.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	rates := make([]ExchangeRateResponse, len(p.ExchangeRates))
	for i, r := range p.ExchangeRates {
		rates[i] = ExchangeRateResponse{
			ExchangeRateID: r.ExchangeRateID,
			CurrencyCode:   r.CurrencyCode,
			Conversion:     r.Conversion,
		}
	}
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Price:         p.Price,
		Expiration:    p.Expiration.Format(dates.ISOLayout),
		ExchangeRates: rates,
	}
}

// ToListProductsResponse converts a page of products to the list DTO.
func ToListProductsResponse(page *domain.ProductPage, pageNum, limit int) ListProductsResponse {
	products := make([]ProductResponse, len(page.Products))
	for i := range page.Products {
		products[i] = ToProductResponse(&page.Products[i])
	}
	return ListProductsResponse{
		Products: products,
		Total:    page.TotalCount,
		Page:     pageNum,
		Limit:    limit,
	}
}
