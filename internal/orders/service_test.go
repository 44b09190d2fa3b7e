// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package orders_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/orders"
	"github.com/dramacollection/storefront/internal/platform/apperr"
)

type memoryOrderRepository struct {
	created []*orders.Order
}

func (m *memoryOrderRepository) CreateOrder(_ context.Context, o *orders.Order) error {
	m.created = append(m.created, o)
	return nil
}

func (m *memoryOrderRepository) ListOrders(_ context.Context, _, _ int) ([]*orders.Order, int, error) {
	return m.created, len(m.created), nil
}

func (m *memoryOrderRepository) ListOrdersByEmail(_ context.Context, email string, _, _ int) ([]*orders.Order, int, error) {
	var result []*orders.Order
	for _, o := range m.created {
		if o.Email == email {
			result = append(result, o)
		}
	}
	return result, len(result), nil
}

func (m *memoryOrderRepository) GetOrderByID(_ context.Context, id string) (*orders.Order, error) {
	for _, o := range m.created {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

func (m *memoryOrderRepository) UpdateOrderStatus(_ context.Context, id string, status orders.Status) error {
	for _, o := range m.created {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return apperr.NotFound("Order")
}

func (m *memoryOrderRepository) CountOrders(_ context.Context) (int, error) {
	return len(m.created), nil
}

func (m *memoryOrderRepository) TotalRevenue(_ context.Context) (float64, error) {
	var revenue float64
	for _, o := range m.created {
		if o.Status != orders.StatusCancelled {
			revenue += o.Total
		}
	}
	return revenue, nil
}

type fixedCartReader struct {
	lines []cart.Line
}

func (f *fixedCartReader) Load(_ context.Context, _ string) (*cart.Cart, error) {
	return &cart.Cart{Lines: append([]cart.Line(nil), f.lines...)}, nil
}

func newTestService(repo orders.Repository, carts orders.CartReader) *orders.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return orders.NewService(repo, carts, "905550581207", logger)
}

/*
TestService_CheckoutRecordsOrderAndBuildsLink verifies the happy path: the
cart snapshot becomes a pending order row and the result carries a wa.me
link with the summary text.
*/
func TestService_CheckoutRecordsOrderAndBuildsLink(t *testing.T) {
	repo := &memoryOrderRepository{}
	carts := &fixedCartReader{lines: []cart.Line{
		{ProductID: "p-1", Name: "İnci Kolye", Price: 100, Quantity: 1, Stock: 2},
		{ProductID: "p-2", Name: "Gümüş Bileklik", Price: 15, Quantity: 2, Stock: 5},
	}}
	service := newTestService(repo, carts)

	result, err := service.Checkout(context.Background(), "a@example.com")
	require.NoError(t, err)

	// 1. The order row
	require.Len(t, repo.created, 1)
	order := repo.created[0]
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "a@example.com", order.Email)
	assert.Equal(t, orders.StatusPending, order.Status)
	assert.InDelta(t, 130.0, order.Total, 0.001)
	assert.Len(t, order.Lines, 2)

	// 2. The handoff link
	assert.Contains(t, result.WhatsAppURL, "https://wa.me/905550581207?text=")
}

/*
TestService_CheckoutRejectsEmptyCart verifies that an empty cart, and a
cart that sanitation empties, both fail with Unprocessable and record
nothing.
*/
func TestService_CheckoutRejectsEmptyCart(t *testing.T) {
	repo := &memoryOrderRepository{}

	// 1. Truly empty
	service := newTestService(repo, &fixedCartReader{})
	_, err := service.Checkout(context.Background(), "a@example.com")
	require.Error(t, err)
	assert.Equal(t, "UNPROCESSABLE", apperr.As(err).Code)

	// 2. Only invalid lines
	service = newTestService(repo, &fixedCartReader{lines: []cart.Line{
		{ProductID: "over", Price: 10, Quantity: 9, Stock: 3},
	}})
	_, err = service.Checkout(context.Background(), "a@example.com")
	require.Error(t, err)
	assert.Empty(t, repo.created)
}

/*
TestService_CheckoutFiltersInvalidLines verifies that sanitation runs at
checkout: a line that went out of invariant since the last cart write never
reaches the order.
*/
func TestService_CheckoutFiltersInvalidLines(t *testing.T) {
	repo := &memoryOrderRepository{}
	service := newTestService(repo, &fixedCartReader{lines: []cart.Line{
		{ProductID: "ok", Name: "Halka Küpe", Price: 40, Quantity: 1, Stock: 4},
		{ProductID: "bad", Name: "Bozuk", Price: -1, Quantity: 1, Stock: 4},
	}})

	result, err := service.Checkout(context.Background(), "a@example.com")
	require.NoError(t, err)

	require.Len(t, result.Order.Lines, 1)
	assert.Equal(t, "ok", result.Order.Lines[0].ProductID)
	assert.InDelta(t, 40.0, result.Order.Total, 0.001)
}

/*
TestService_UpdateStatusValidatesTransitions verifies the coarse status
machine: known states pass, unknown ones fail validation.
*/
func TestService_UpdateStatusValidatesTransitions(t *testing.T) {
	repo := &memoryOrderRepository{}
	carts := &fixedCartReader{lines: []cart.Line{
		{ProductID: "p-1", Name: "İnci Kolye", Price: 100, Quantity: 1, Stock: 2},
	}}
	service := newTestService(repo, carts)

	result, err := service.Checkout(context.Background(), "a@example.com")
	require.NoError(t, err)

	require.NoError(t, service.UpdateStatus(context.Background(), result.Order.ID, orders.StatusConfirmed))
	assert.Equal(t, orders.StatusConfirmed, repo.created[0].Status)

	err = service.UpdateStatus(context.Background(), result.Order.ID, orders.Status("shipped"))
	assert.Error(t, err)
}
