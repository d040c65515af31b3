package mapping

import (
	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/models"
)

// ToModelProduct converts a domain Product to a model Product. Exchange rates are stored separately.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:  d.ProductID,
		Name:       d.Name,
		Price:      d.Price,
		Expiration: d.Expiration,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainProduct converts a model Product and its rates to a domain Product
func ToDomainProduct(m models.Product, rates []models.ExchangeRate) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		Price:         m.Price,
		Expiration:    m.Expiration,
		ExchangeRates: ToDomainExchangeRates(rates),
		CreatedAt:     m.CreatedAt,
	}
}
