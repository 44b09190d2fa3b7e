package category

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/platform/validate"
	"github.com/dramacollection/storefront/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategoryBySlug(context context.Context, categorySlug string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, categorySlug)
}

func (service *Service) CreateCategory(context context.Context, c *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 100)
	validator.Min(FieldSortOrder, c.SortOrder, 0)

	if err := validator.Err(); err != nil {
		return err
	}

	if c.Slug == "" {
		c.Slug = slug.From(c.Name)
	}

	if err := service.repo.CreateCategory(context, c); err != nil {
		return err
	}

	service.logger.Info("category_created", slog.String("slug", c.Slug))
	return nil
}

func (service *Service) UpdateCategory(context context.Context, id int, c *Category) error {
	c.ID = id
	validator := &validate.Validator{}
	validator.Required(FieldName, c.Name).MaxLen(FieldName, c.Name, 100)
	validator.Min(FieldSortOrder, c.SortOrder, 0)

	if err := validator.Err(); err != nil {
		return err
	}

	if c.Slug == "" {
		c.Slug = slug.From(c.Name)
	}

	if err := service.repo.UpdateCategory(context, c); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.Int("category_id", c.ID))
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id int) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))
	return nil
}
