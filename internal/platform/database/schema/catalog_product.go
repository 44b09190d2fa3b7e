package schema

// CatalogProductTable represents the 'catalog.product' table
type CatalogProductTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Price       string
	ImageURL    string
	Category    string
	Stock       string
	Description string
	CreatedAt   string
	UpdatedAt   string
	DeletedAt   string
}

// CatalogProduct is the schema definition for catalog.product
var CatalogProduct = CatalogProductTable{
	Table:       "catalog.product",
	ID:          "id",
	Name:        "name",
	Slug:        "slug",
	Price:       "price",
	ImageURL:    "imageurl",
	Category:    "category",
	Stock:       "stock",
	Description: "description",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	DeletedAt:   "deletedat",
}

// Columns returns all standard column names
func (t CatalogProductTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Price, t.ImageURL, t.Category,
		t.Stock, t.Description, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
