package mapping

import (
	"strings"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID: d.ExchangeRateID,
		ProductID:      d.ProductID,
		CurrencyCode:   strings.ToUpper(d.CurrencyCode),
		Conversion:     d.Conversion,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID: m.ExchangeRateID,
		ProductID:      m.ProductID,
		CurrencyCode:   m.CurrencyCode,
		Conversion:     m.Conversion,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainExchangeRates converts a slice, never returning nil.
func ToDomainExchangeRates(ms []models.ExchangeRate) []domain.ExchangeRate {
	rates := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		rates[i] = ToDomainExchangeRate(m)
	}
	return rates
}
