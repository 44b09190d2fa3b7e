package product

import "context"

// Repository defines the data access contract for catalog products.
type Repository interface {
	ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error)
	GetProductByID(context context.Context, id string) (*Product, error)
	GetProductBySlug(context context.Context, slug string) (*Product, error)
	CreateProduct(context context.Context, p *Product) error
	UpdateProduct(context context.Context, p *Product) error
	DeleteProduct(context context.Context, id string) error
	CountProducts(context context.Context) (int, error)
}
