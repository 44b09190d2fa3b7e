// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package favorites

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/catalog/product"
)

// CatalogReader resolves a product at favorite time for the snapshot.
type CatalogReader interface {
	GetProductByID(ctx context.Context, id string) (*product.Product, error)
}

// Service drives favorites mutations for an identity.
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

// List returns the current favorites set for an email.
func (service *Service) List(context context.Context, email string) (*Set, error) {
	return service.repo.Load(context, email)
}

// Contains reports whether a product is favorited by an email.
func (service *Service) Contains(context context.Context, email string, productID string) (bool, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return false, err
	}
	return current.Contains(productID), nil
}

// Add favorites a product. Idempotent: favoriting an already-favorited
// product changes nothing and is not an error. A product the catalog cannot
// resolve is a silent no-op, mirroring the cart's add semantics.
func (service *Service) Add(context context.Context, email string, productID string) (*Set, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	if current.Contains(productID) {
		return current, nil
	}

	item, err := service.catalog.GetProductByID(context, productID)
	if err != nil {
		service.logger.Info("favorites_add_unknown_product", slog.String("email", email), slog.String("product_id", productID))
		return current, nil
	}

	if current.Add(NewItem(*item)) {
		service.persist(context, email, current)
	}
	return current, nil
}

// Remove unfavorites a product. No-op when the product is not in the set.
func (service *Service) Remove(context context.Context, email string, productID string) (*Set, error) {
	current, err := service.repo.Load(context, email)
	if err != nil {
		return nil, err
	}

	if current.Remove(productID) {
		service.persist(context, email, current)
	}
	return current, nil
}

// Clear empties the favorites set for an email. Idempotent: clearing an
// already-empty set is not an error.
func (service *Service) Clear(context context.Context, email string) error {
	return service.repo.Clear(context, email)
}

// OnIdentityChanged reloads and rewrites the new identity's favorites so the
// persisted copy is normalized. Absent identity (logout) is a no-op: the set
// stays stored under the previous owner's namespace.
func (service *Service) OnIdentityChanged(context context.Context, email string, present bool) {
	if !present {
		return
	}

	current, err := service.repo.Load(context, email)
	if err != nil {
		service.logger.Error("favorites_identity_reload_failed", slog.String("email", email), slog.String("error", err.Error()))
		return
	}

	service.persist(context, email, current)
}

// persist writes the set back, logging failures without surfacing them.
func (service *Service) persist(context context.Context, email string, s *Set) {
	if err := service.repo.Save(context, email, s); err != nil {
		service.logger.Error("favorites_persist_failed", slog.String("email", email), slog.String("error", err.Error()))
	}
}
