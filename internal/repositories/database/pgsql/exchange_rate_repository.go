package pgsql

import (
	"context"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/product_catalog/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository stores product exchange rates using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(db *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts one rate. The product must already exist (FK).
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (id, product_id, currency_code, conversion, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ExchangeRateID, m.ProductID, m.CurrencyCode, m.Conversion, m.CreatedAt,
	)
	if err != nil {
		return wrapWriteError(err, "exchange rate "+m.CurrencyCode)
	}
	return nil
}
