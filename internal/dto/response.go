package dto

import "github.com/SscSPs/product_catalog/internal/core/domain"

// JSONResponse is the success envelope returned by catalog endpoints.
type JSONResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// ErrorResponse is the envelope returned when a request cannot be processed.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message,omitempty"`
	Error      string `json:"error,omitempty"`
}

// CurrencyRateResponse is one entry of the cached conversion table.
type CurrencyRateResponse struct {
	CurrencyCode string  `json:"currency"`
	Rate         float64 `json:"rate"`
}

// ToCurrencyRateResponses converts a conversion table, keeping its order.
func ToCurrencyRateResponses(table domain.ConversionTable) []CurrencyRateResponse {
	res := make([]CurrencyRateResponse, len(table))
	for i, cr := range table {
		res[i] = CurrencyRateResponse{CurrencyCode: cr.CurrencyCode, Rate: cr.Rate}
	}
	return res
}
