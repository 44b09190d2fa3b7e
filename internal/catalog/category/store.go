package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, c *Category) error
	UpdateCategory(context context.Context, c *Category) error
	DeleteCategory(context context.Context, id int) error
}
