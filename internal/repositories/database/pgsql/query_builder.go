package pgsql

import (
	"fmt"
	"strings"

	"github.com/SscSPs/product_catalog/internal/core/domain"
)

// sortColumns whitelists the columns a catalog query may be ordered by.
var sortColumns = map[domain.ProductSortField]string{
	domain.SortByName:       "name",
	domain.SortByPrice:      "price",
	domain.SortByExpiration: "expiration",
}

const productColumns = "id, name, price, expiration, created_at"

// ProductQuery is a parameterised catalog query.
// CountSQL takes Args; PageSQL takes PageArgs (Args plus LIMIT and OFFSET).
type ProductQuery struct {
	CountSQL string
	PageSQL  string
	Args     []any
	Limit    int
	Offset   int
}

// PageArgs returns the arguments of PageSQL.
func (q ProductQuery) PageArgs() []any {
	args := make([]any, 0, len(q.Args)+2)
	args = append(args, q.Args...)
	return append(args, q.Limit, q.Offset)
}

// BuildProductQuery turns a filter into SQL. User input only ever travels as
// a placeholder argument; the ORDER BY column comes from sortColumns.
func BuildProductQuery(filter domain.ProductFilter) (ProductQuery, error) {
	where := []string{"1=1"}
	args := []any{}
	argNum := 1

	if filter.Name != nil && *filter.Name != "" {
		where = append(where, fmt.Sprintf("name ILIKE '%%' || $%d || '%%'", argNum))
		args = append(args, EscapeLike(*filter.Name))
		argNum++
	}
	if filter.MinPrice != nil {
		where = append(where, fmt.Sprintf("price >= $%d", argNum))
		args = append(args, *filter.MinPrice)
		argNum++
	}
	if filter.MaxPrice != nil {
		where = append(where, fmt.Sprintf("price <= $%d", argNum))
		args = append(args, *filter.MaxPrice)
		argNum++
	}
	if filter.MinExpiration != nil {
		where = append(where, fmt.Sprintf("expiration >= $%d", argNum))
		args = append(args, *filter.MinExpiration)
		argNum++
	}
	if filter.MaxExpiration != nil {
		where = append(where, fmt.Sprintf("expiration <= $%d", argNum))
		args = append(args, *filter.MaxExpiration)
		argNum++
	}

	orderBy := "created_at ASC, id ASC"
	if filter.SortBy != "" {
		column, ok := sortColumns[filter.SortBy]
		if !ok {
			return ProductQuery{}, fmt.Errorf("unsupported sort field %q", filter.SortBy)
		}
		direction := "ASC"
		if filter.Order == domain.SortDesc {
			direction = "DESC"
		}
		orderBy = fmt.Sprintf("%s %s, id ASC", column, direction)
	}

	baseQuery := "FROM products WHERE " + strings.Join(where, " AND ")
	return ProductQuery{
		CountSQL: "SELECT COUNT(*) " + baseQuery,
		PageSQL: fmt.Sprintf("SELECT %s %s ORDER BY %s LIMIT $%d OFFSET $%d",
			productColumns, baseQuery, orderBy, argNum, argNum+1),
		Args:   args,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// EscapeLike escapes the LIKE wildcards so a name filter matches them literally.
func EscapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
