// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package cart_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/catalog/product"
)

// memoryRepository keeps one cart per email, like the Redis store but in-process.
type memoryRepository struct {
	carts   map[string][]cart.Line
	saveErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{carts: map[string][]cart.Line{}}
}

func (m *memoryRepository) Load(_ context.Context, email string) (*cart.Cart, error) {
	return &cart.Cart{Lines: cart.Sanitize(m.carts[email])}, nil
}

func (m *memoryRepository) Save(_ context.Context, email string, c *cart.Cart) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[email] = append([]cart.Line(nil), c.Lines...)
	return nil
}

func (m *memoryRepository) Clear(_ context.Context, email string) error {
	delete(m.carts, email)
	return nil
}

// fixedCatalog resolves products from a static map.
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

func newTestService(repo cart.Repository, products ...product.Product) *cart.Service {
	catalog := &fixedCatalog{products: map[string]product.Product{}}
	for _, p := range products {
		catalog.products[p.ID] = p
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cart.NewService(repo, catalog, logger)
}

/*
TestService_AddPersistsAndClamps verifies the end-to-end add path: catalog
lookup, in-cart clamp at stock, and write-back to the repository.
*/
func TestService_AddPersistsAndClamps(t *testing.T) {
	repo := newMemoryRepository()
	necklace := pearlNecklace() // stock 2
	service := newTestService(repo, necklace)
	ctx := context.Background()

	// 1. Three adds against stock 2 end at quantity 2
	for i := 0; i < 3; i++ {
		_, err := service.AddProduct(ctx, "a@example.com", necklace.ID)
		require.NoError(t, err)
	}

	quantity, err := service.Quantity(ctx, "a@example.com", necklace.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, quantity)

	// 2. The persisted copy matches the returned state
	assert.Len(t, repo.carts["a@example.com"], 1)
	assert.Equal(t, 2, repo.carts["a@example.com"][0].Quantity)
}

/*
TestService_AddUnknownProductIsNoOp verifies that adding a product the
catalog cannot resolve leaves the cart untouched and returns no error.
*/
func TestService_AddUnknownProductIsNoOp(t *testing.T) {
	repo := newMemoryRepository()
	service := newTestService(repo)
	ctx := context.Background()

	current, err := service.AddProduct(ctx, "a@example.com", "ghost")
	require.NoError(t, err)
	assert.True(t, current.IsEmpty())
}

/*
TestService_PersistFailureIsNotSurfaced verifies that a failing write-back
does not surface to the caller: the mutated cart is still returned.
*/
func TestService_PersistFailureIsNotSurfaced(t *testing.T) {
	repo := newMemoryRepository()
	repo.saveErr = errors.New("connection reset")
	necklace := pearlNecklace()
	service := newTestService(repo, necklace)

	current, err := service.AddProduct(context.Background(), "a@example.com", necklace.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, current.QuantityOf(necklace.ID))
}

/*
TestService_IdentitySwitchRoundTrip verifies namespace isolation: identity A
fills a cart, identity B sees an empty one, and A's cart survives the switch
back intact.
*/
func TestService_IdentitySwitchRoundTrip(t *testing.T) {
	repo := newMemoryRepository()
	necklace := pearlNecklace()
	service := newTestService(repo, necklace)
	ctx := context.Background()

	// 1. A fills their cart
	_, err := service.AddProduct(ctx, "a@example.com", necklace.ID)
	require.NoError(t, err)

	// 2. B signs in and sees nothing
	service.OnIdentityChanged(ctx, "b@example.com", true)
	cartB, err := service.Get(ctx, "b@example.com")
	require.NoError(t, err)
	assert.True(t, cartB.IsEmpty())

	// 3. A returns and finds their cart unchanged
	service.OnIdentityChanged(ctx, "a@example.com", true)
	cartA, err := service.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, cartA.QuantityOf(necklace.ID))
}

/*
TestService_IdentityChangeSanitizesStoredCart verifies that the sign-in
reload drops persisted lines that no longer satisfy the invariants and
rewrites the cleaned document.
*/
func TestService_IdentityChangeSanitizesStoredCart(t *testing.T) {
	repo := newMemoryRepository()
	repo.carts["a@example.com"] = []cart.Line{
		{ProductID: "ok", Price: 10, Quantity: 1, Stock: 3},
		{ProductID: "over", Price: 10, Quantity: 9, Stock: 3},
	}
	service := newTestService(repo)
	ctx := context.Background()

	service.OnIdentityChanged(ctx, "a@example.com", true)

	assert.Len(t, repo.carts["a@example.com"], 1)
	assert.Equal(t, "ok", repo.carts["a@example.com"][0].ProductID)
}

/*
TestService_LogoutLeavesCartPersisted verifies that an absent identity event
is a no-op: the owner's cart stays stored for their next visit.
*/
func TestService_LogoutLeavesCartPersisted(t *testing.T) {
	repo := newMemoryRepository()
	necklace := pearlNecklace()
	service := newTestService(repo, necklace)
	ctx := context.Background()

	_, err := service.AddProduct(ctx, "a@example.com", necklace.ID)
	require.NoError(t, err)

	service.OnIdentityChanged(ctx, "a@example.com", false)

	assert.Len(t, repo.carts["a@example.com"], 1)
}
