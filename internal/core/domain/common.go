package domain

// SortOrder is the direction applied to a catalog sort field.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductSortField names the product column a catalog listing may be sorted by.
type ProductSortField string

const (
	SortByName       ProductSortField = "name"
	SortByPrice      ProductSortField = "price"
	SortByExpiration ProductSortField = "expiration"
)

// IsValid reports whether f is one of the sortable product fields.
func (f ProductSortField) IsValid() bool {
	switch f {
	case SortByName, SortByPrice, SortByExpiration:
		return true
	}
	return false
}
