// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package cart

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/catalog/product"
)

// CatalogReader is the slice of the catalog the cart needs: a fresh product
// row at add time, so price and stock snapshots come from the source of truth.
type CatalogReader interface {
	GetProductByID(ctx context.Context, id string) (*product.Product, error)
}

// Service drives cart mutations for an identity and keeps the persisted copy
// in sync after every change.
type Service struct {
	repo    Repository
	catalog CatalogReader
	logger  *slog.Logger
}

func NewService(repo Repository, catalog CatalogReader, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Get returns the current cart for an email.
func (service *Service) Get(context context.Context, email string) (*Cart, error) {
	return service.repo.Load(context, email)
}

// AddProduct resolves the product from the catalog and adds it to the cart.
//
// A product that no longer exists is a silent no-op, matching the in-memory
// add semantics for invalid products.
func (service *Service) AddProduct(context context.Context, email string, productID string) (*Cart, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	item, err := service.catalog.GetProductByID(context, productID)
	if err != nil {
		service.logger.Info("cart_add_unknown_product", slog.String("email", email), slog.String("product_id", productID))
		return current, nil
	}

	current.Add(*item)
	service.persist(context, email, current)
	return current, nil
}

// Increase increments an existing line by one, clamped at its stock.
func (service *Service) Increase(context context.Context, email string, productID string) (*Cart, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	current.IncreaseQuantity(productID)
	service.persist(context, email, current)
	return current, nil
}

// Decrease decrements an existing line, removing it at zero.
func (service *Service) Decrease(context context.Context, email string, productID string) (*Cart, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	current.DecreaseQuantity(productID)
	service.persist(context, email, current)
	return current, nil
}

// RemoveLine deletes a line regardless of quantity.
func (service *Service) RemoveLine(context context.Context, email string, productID string) (*Cart, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	current.RemoveAll(productID)
	service.persist(context, email, current)
	return current, nil
}

// Clear empties the cart and removes the persisted copy.
func (service *Service) Clear(context context.Context, email string) error {
	if err := service.repo.Clear(context, email); err != nil {
		service.logger.Error("cart_clear_failed", slog.String("email", email), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Quantity returns the current quantity of a product in the cart, 0 if absent.
func (service *Service) Quantity(context context.Context, email string, productID string) (int, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return 0, err
	}
	return current.QuantityOf(productID), nil
}

// OnIdentityChanged re-reads, sanitizes and rewrites the new identity's cart.
//
// When the identity is absent (logout) nothing happens: the previous owner's
// cart stays persisted under their own namespace for their next visit.
func (service *Service) OnIdentityChanged(context context.Context, email string, present bool) {
	if !present {
		return
	}

	current, err := service.repo.Load(context, email)
	if err != nil {
		service.logger.Error("cart_identity_reload_failed", slog.String("email", email), slog.String("error", err.Error()))
		return
	}

	service.persist(context, email, current)
}

// persist writes the cart back, logging failures without surfacing them:
// cart state lives in memory for the request either way, and the next
// successful mutation rewrites the full document.
func (service *Service) persist(context context.Context, email string, c *Cart) {
	if err := service.repo.Save(context, email, c); err != nil {
		service.logger.Error("cart_persist_failed", slog.String("email", email), slog.String("error", err.Error()))
	}
}
