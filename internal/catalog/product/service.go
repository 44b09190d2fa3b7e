package product

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/platform/validate"
	"github.com/dramacollection/storefront/pkg/slug"
	"github.com/dramacollection/storefront/pkg/uuid"
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

func (service *Service) ListProducts(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error) {
	return service.repo.ListProducts(context, filter, limit, offset)
}

func (service *Service) GetProduct(context context.Context, id string) (*Product, error) {
	return service.repo.GetProductByID(context, id)
}

func (service *Service) GetProductBySlug(context context.Context, productSlug string) (*Product, error) {
	return service.repo.GetProductBySlug(context, productSlug)
}

func (service *Service) CreateProduct(context context.Context, p *Product) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	validator.Required(FieldCategory, p.Category).MaxLen(FieldCategory, p.Category, 100)
	validator.NonNegative(FieldPrice, p.Price)
	validator.Min(FieldStock, p.Stock, 0)

	if p.ImageURL != "" {
		validator.URL(FieldImageURL, p.ImageURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if p.ID == "" {
		p.ID = uuid.New()
	}
	if p.Slug == "" {
		p.Slug = slug.From(p.Name)
	}

	if err := service.repo.CreateProduct(context, p); err != nil {
		return err
	}

	service.logger.Info("product_created", slog.String("product_id", p.ID), slog.String("name", p.Name))
	return nil
}

func (service *Service) UpdateProduct(context context.Context, id string, p *Product) error {
	p.ID = id
	validator := &validate.Validator{}

	validator.Required(FieldName, p.Name).MaxLen(FieldName, p.Name, 200)
	validator.Required(FieldCategory, p.Category).MaxLen(FieldCategory, p.Category, 100)
	validator.NonNegative(FieldPrice, p.Price)
	validator.Min(FieldStock, p.Stock, 0)

	if p.ImageURL != "" {
		validator.URL(FieldImageURL, p.ImageURL)
	}

	if err := validator.Err(); err != nil {
		return err
	}

	if p.Slug == "" {
		p.Slug = slug.From(p.Name)
	}

	if err := service.repo.UpdateProduct(context, p); err != nil {
		return err
	}

	service.logger.Info("product_updated", slog.String("product_id", p.ID))
	return nil
}

func (service *Service) DeleteProduct(context context.Context, id string) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.Warn("product_deleted", slog.String("product_id", id))
	return nil
}

func (service *Service) CountProducts(context context.Context) (int, error) {
	return service.repo.CountProducts(context)
}
