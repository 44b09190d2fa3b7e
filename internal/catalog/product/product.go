package product

import "time"

// Product is a single catalog item (necklace, bracelet, earring, piercing).
//
// Products are owned by the back office: the public storefront reads them,
// the admin dashboard mutates them. Stock is advisory display data used to
// clamp cart quantities; there is no reservation system.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldImageURL    = "image_url"
	FieldCategory    = "category"
	FieldStock       = "stock"
	FieldDescription = "description"
)

// Filter narrows product listings.
type Filter struct {
	// Category restricts results to a category slug.
	Category string
	// Query is a case-insensitive substring match on the product name.
	Query string
}
