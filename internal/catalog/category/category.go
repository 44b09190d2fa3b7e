package category

import "time"

// Category is a storefront navigation bucket (kolye, bileklik, küpe, piercing).
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"-"`
}

const (
	FieldName      = "name"
	FieldSortOrder = "sort_order"
)
