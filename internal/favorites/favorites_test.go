// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package favorites_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramacollection/storefront/internal/catalog/product"
	"github.com/dramacollection/storefront/internal/favorites"
)

type memoryRepository struct {
	sets  map[string][]favorites.Item
	saves int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{sets: map[string][]favorites.Item{}}
}

func (m *memoryRepository) Load(_ context.Context, email string) (*favorites.Set, error) {
	return &favorites.Set{Items: append([]favorites.Item(nil), m.sets[email]...)}, nil
}

func (m *memoryRepository) Save(_ context.Context, email string, s *favorites.Set) error {
	m.saves++
	m.sets[email] = append([]favorites.Item(nil), s.Items...)
	return nil
}

func (m *memoryRepository) Clear(_ context.Context, email string) error {
	delete(m.sets, email)
	return nil
}

type fixedCatalog struct {
	products map[string]product.Product
}

func (f *fixedCatalog) GetProductByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

func newTestService(repo favorites.Repository, products ...product.Product) *favorites.Service {
	catalog := &fixedCatalog{products: map[string]product.Product{}}
	for _, p := range products {
		catalog.products[p.ID] = p
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return favorites.NewService(repo, catalog, logger)
}

func silverEarring() product.Product {
	return product.Product{
		ID:       "p-7",
		Name:     "Gümüş Küpe",
		Price:    45,
		Category: "kupe",
		Stock:    10,
	}
}

/*
TestSet_AddIsIdempotent verifies set semantics at the entity level: a second
add of the same product id reports no change.
*/
func TestSet_AddIsIdempotent(t *testing.T) {
	s := &favorites.Set{}
	item := favorites.NewItem(silverEarring())

	assert.True(t, s.Add(item))
	assert.False(t, s.Add(item))
	assert.Len(t, s.Items, 1)
}

/*
TestService_AddAndRemove verifies the full favorite/unfavorite cycle,
including that no-op mutations skip the write-back.
*/
func TestService_AddAndRemove(t *testing.T) {
	repo := newMemoryRepository()
	earring := silverEarring()
	service := newTestService(repo, earring)
	ctx := context.Background()

	// 1. Favorite once
	current, err := service.Add(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	assert.True(t, current.Contains(earring.ID))
	assert.Equal(t, 1, repo.saves)

	// 2. Favoriting again is idempotent and writes nothing
	_, err = service.Add(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)

	// 3. Unfavorite removes and persists
	current, err = service.Remove(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	assert.False(t, current.Contains(earring.ID))
	assert.Equal(t, 2, repo.saves)

	// 4. Removing an absent product writes nothing
	_, err = service.Remove(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.saves)
}

/*
TestService_AddUnknownProductIsNoOp verifies that an unresolvable product id
never enters the set and returns no error.
*/
func TestService_AddUnknownProductIsNoOp(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)

	current, err := service.Add(context.Background(), "a@example.com", "ghost")
	require.NoError(t, err)
	assert.Empty(t, current.Items)
	assert.Equal(t, 0, repo.saves)
}

/*
TestService_ClearEmptiesTheSet verifies that clearing drops every favorite
for the identity at once, only touches that identity's namespace, and is
idempotent on an already-empty set.
*/
func TestService_ClearEmptiesTheSet(t *testing.T) {
	repo := newMemoryRepository()
	earring := silverEarring()
	service := newTestService(repo, earring)
	ctx := context.Background()

	// 1. Two identities favorite the same product
	_, err := service.Add(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	_, err = service.Add(ctx, "b@example.com", earring.ID)
	require.NoError(t, err)

	// 2. Clearing one empties only that namespace
	require.NoError(t, service.Clear(ctx, "a@example.com"))

	current, err := service.List(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Empty(t, current.Items)

	has, err := service.Contains(ctx, "b@example.com", earring.ID)
	require.NoError(t, err)
	assert.True(t, has)

	// 3. Clearing again is a no-op
	require.NoError(t, service.Clear(ctx, "a@example.com"))
}

/*
TestService_NamespaceIsolation verifies that two identities never see each
other's favorites.
*/
func TestService_NamespaceIsolation(t *testing.T) {
	repo := newMemoryRepository()
	earring := silverEarring()
	service := newTestService(repo, earring)
	ctx := context.Background()

	_, err := service.Add(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)

	has, err := service.Contains(ctx, "b@example.com", earring.ID)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = service.Contains(ctx, "a@example.com", earring.ID)
	require.NoError(t, err)
	assert.True(t, has)
}
