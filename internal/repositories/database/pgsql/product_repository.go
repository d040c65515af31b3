package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/product_catalog/internal/apperrors"
	"github.com/SscSPs/product_catalog/internal/core/domain"
	portsrepo "github.com/SscSPs/product_catalog/internal/core/ports/repositories"
	"github.com/SscSPs/product_catalog/internal/models"
	"github.com/SscSPs/product_catalog/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxProductRepository implements the product repository using pgxpool.
type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new PgxProductRepository.
func newPgxProductRepository(db *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// SaveProduct inserts a new product row.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO products (id, name, price, expiration, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ProductID, m.Name, m.Price, m.Expiration, m.CreatedAt,
	)
	if err != nil {
		return wrapWriteError(err, "product "+m.Name)
	}
	return nil
}

// ExistsProductByName reports whether a product with exactly this name exists.
func (r *PgxProductRepository) ExistsProductByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product name: %w", err)
	}
	return exists, nil
}

// FindProductByID retrieves a product and its exchange rates.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var m models.Product
	err := r.Pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, productID,
	).Scan(&m.ProductID, &m.Name, &m.Price, &m.Expiration, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	rates, err := r.findRatesByProductIDs(ctx, []string{productID})
	if err != nil {
		return nil, err
	}
	product := mapping.ToDomainProduct(m, rates[productID])
	return &product, nil
}

// QueryProducts runs the catalog query and attaches each product's rates.
func (r *PgxProductRepository) QueryProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductPage, error) {
	q, err := BuildProductQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}

	var total int
	if err := r.Pool.QueryRow(ctx, q.CountSQL, q.Args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if total == 0 || filter.Offset >= total {
		return &domain.ProductPage{Products: []domain.Product{}, TotalCount: total}, nil
	}

	rows, err := r.Pool.Query(ctx, q.PageSQL, q.PageArgs()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var page []models.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ProductID, &m.Name, &m.Price, &m.Expiration, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	ids := make([]string, len(page))
	for i, m := range page {
		ids[i] = m.ProductID
	}
	rates, err := r.findRatesByProductIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, len(page))
	for i, m := range page {
		products[i] = mapping.ToDomainProduct(m, rates[m.ProductID])
	}
	return &domain.ProductPage{Products: products, TotalCount: total}, nil
}

// findRatesByProductIDs returns rates grouped by product, each group ordered by currency code.
func (r *PgxProductRepository) findRatesByProductIDs(ctx context.Context, productIDs []string) (map[string][]models.ExchangeRate, error) {
	grouped := make(map[string][]models.ExchangeRate, len(productIDs))
	if len(productIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.Pool.Query(ctx, `
		SELECT id, product_id, currency_code, conversion, created_at
		FROM exchange_rates
		WHERE product_id = ANY($1::uuid[])
		ORDER BY product_id, currency_code ASC`,
		productIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(&m.ExchangeRateID, &m.ProductID, &m.CurrencyCode, &m.Conversion, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate: %w", err)
		}
		grouped[m.ProductID] = append(grouped[m.ProductID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rates: %w", err)
	}
	return grouped, nil
}

// DeleteProduct removes a product. exchange_rates rows go with it (ON DELETE CASCADE).
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return nil
}
