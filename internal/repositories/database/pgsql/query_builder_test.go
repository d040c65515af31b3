package pgsql_test

import (
	"testing"
	"time"

	"github.com/SscSPs/product_catalog/internal/core/domain"
	"github.com/SscSPs/product_catalog/internal/repositories/database/pgsql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBuildProductQuery_NoFilters(t *testing.T) {
	q, err := pgsql.BuildProductQuery(domain.ProductFilter{Limit: 10, Offset: 0})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE 1=1", q.CountSQL)
	assert.Equal(t,
		"SELECT id, name, price, expiration, created_at FROM products WHERE 1=1 ORDER BY created_at ASC, id ASC LIMIT $1 OFFSET $2",
		q.PageSQL)
	assert.Empty(t, q.Args)
	assert.Equal(t, []any{10, 0}, q.PageArgs())
}

func TestBuildProductQuery_AllFilters(t *testing.T) {
	minExp := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	maxExp := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	filter := domain.ProductFilter{
		Name:          ptr("milk"),
		MinPrice:      ptr(decimal.RequireFromString("1.50")),
		MaxPrice:      ptr(decimal.RequireFromString("9.99")),
		MinExpiration: &minExp,
		MaxExpiration: &maxExp,
		SortBy:        domain.SortByPrice,
		Order:         domain.SortDesc,
		Limit:         5,
		Offset:        5,
	}

	q, err := pgsql.BuildProductQuery(filter)
	require.NoError(t, err)

	where := "FROM products WHERE 1=1 AND name ILIKE '%' || $1 || '%' AND price >= $2 AND price <= $3 AND expiration >= $4 AND expiration <= $5"
	assert.Equal(t, "SELECT COUNT(*) "+where, q.CountSQL)
	assert.Equal(t, "SELECT id, name, price, expiration, created_at "+where+" ORDER BY price DESC, id ASC LIMIT $6 OFFSET $7", q.PageSQL)
	require.Len(t, q.Args, 5)
	assert.Equal(t, "milk", q.Args[0])
	assert.Equal(t, minExp, q.Args[3])

	pageArgs := q.PageArgs()
	require.Len(t, pageArgs, 7)
	assert.Equal(t, 5, pageArgs[5])
	assert.Equal(t, 5, pageArgs[6])
	assert.Len(t, q.Args, 5, "PageArgs must not grow Args")
}

func TestBuildProductQuery_SortFields(t *testing.T) {
	tests := []struct {
		sortBy domain.ProductSortField
		order  domain.SortOrder
		want   string
	}{
		{domain.SortByName, domain.SortAsc, "ORDER BY name ASC, id ASC"},
		{domain.SortByName, "", "ORDER BY name ASC, id ASC"},
		{domain.SortByExpiration, domain.SortDesc, "ORDER BY expiration DESC, id ASC"},
		{domain.SortByPrice, domain.SortAsc, "ORDER BY price ASC, id ASC"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sortBy)+"_"+string(tt.order), func(t *testing.T) {
			q, err := pgsql.BuildProductQuery(domain.ProductFilter{SortBy: tt.sortBy, Order: tt.order, Limit: 10})
			require.NoError(t, err)
			assert.Contains(t, q.PageSQL, tt.want)
		})
	}
}

func TestBuildProductQuery_RejectsUnknownSortField(t *testing.T) {
	_, err := pgsql.BuildProductQuery(domain.ProductFilter{SortBy: "price; DROP TABLE products", Limit: 10})
	assert.Error(t, err)
}

func TestBuildProductQuery_NameIsParameterised(t *testing.T) {
	q, err := pgsql.BuildProductQuery(domain.ProductFilter{Name: ptr("50%_off' OR 1=1 --"), Limit: 10})
	require.NoError(t, err)

	assert.NotContains(t, q.PageSQL, "OR 1=1")
	assert.Equal(t, []any{`50\%\_off' OR 1=1 --`}, q.Args)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "milk", pgsql.EscapeLike("milk"))
	assert.Equal(t, `100\%`, pgsql.EscapeLike("100%"))
	assert.Equal(t, `a\_b`, pgsql.EscapeLike("a_b"))
	assert.Equal(t, `c:\\dir`, pgsql.EscapeLike(`c:\dir`))
}
