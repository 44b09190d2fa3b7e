// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

package orders

import (
	"context"
	"log/slog"

	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/platform/apperr"
	"github.com/dramacollection/storefront/pkg/uuid"
)

// CartReader provides the current cart at checkout time.
type CartReader interface {
	Load(ctx context.Context, email string) (*cart.Cart, error)
}

// Service records checkouts and serves order history.
type Service struct {
	repo           Repository
	carts          CartReader
	whatsappNumber string
	logger         *slog.Logger
}

func NewService(repo Repository, carts CartReader, whatsappNumber string, logger *slog.Logger) *Service {
	return &Service{
		repo:           repo,
		carts:          carts,
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

/*
Checkout snapshots the caller's cart into an order and builds the WhatsApp
handoff link.

Description: The cart is re-sanitized before the snapshot so an entry that
went invalid since the last mutation never reaches the order. An empty cart
(including one emptied by sanitation) is rejected. The cart itself is left
untouched: the conversation may still fall through, and the storefront
clears the cart only once the human side confirms.

Parameters:
  - context: context.Context
  - email: string (identity namespace)

Returns:
  - *CheckoutResult: Recorded order and prefilled wa.me link
  - error: apperr.Unprocessable on an empty cart, persistence errors
*/
func (service *Service) Checkout(context context.Context, email string) (*CheckoutResult, error) {
	current, err := service.carts.Load(context, email)
	if err != nil {
		return nil, err
	}

	lines := cart.Sanitize(current.Lines)
	if len(lines) == 0 {
		return nil, apperr.Unprocessable("Cart is empty")
	}

	snapshot := cart.Cart{Lines: lines}
	order := &Order{
		ID:     uuid.New(),
		Email:  email,
		Lines:  lines,
		Total:  snapshot.Total(),
		Status: StatusPending,
	}

	if err := service.repo.CreateOrder(context, order); err != nil {
		return nil, err
	}

	service.logger.Info("order_created",
		slog.String("order_id", order.ID),
		slog.String("email", email),
		slog.Float64("total", order.Total),
	)

	message := BuildOrderMessage(order.Lines, order.Total)
	return &CheckoutResult{
		Order:       order,
		WhatsAppURL: BuildWhatsAppURL(service.whatsappNumber, message),
	}, nil
}

// ListOrders returns the full order book, newest first.
func (service *Service) ListOrders(context context.Context, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListOrders(context, limit, offset)
}

// ListOrdersByEmail returns one identity's order history, newest first.
func (service *Service) ListOrdersByEmail(context context.Context, email string, limit, offset int) ([]*Order, int, error) {
	return service.repo.ListOrdersByEmail(context, email, limit, offset)
}

// GetOrder returns one order by id.
func (service *Service) GetOrder(context context.Context, id string) (*Order, error) {
	return service.repo.GetOrderByID(context, id)
}

// UpdateStatus moves an order through the fulfilment flow.
func (service *Service) UpdateStatus(context context.Context, id string, status Status) error {
	switch status {
	case StatusPending, StatusConfirmed, StatusCancelled:
	default:
		return apperr.ValidationError("Validation failed", apperr.FieldError{Field: "status", Message: "Unknown order status"})
	}

	if err := service.repo.UpdateOrderStatus(context, id, status); err != nil {
		return err
	}

	service.logger.Info("order_status_updated", slog.String("order_id", id), slog.String("status", string(status)))
	return nil
}

// CountOrders reports order volume for the dashboard.
func (service *Service) CountOrders(context context.Context) (int, error) {
	return service.repo.CountOrders(context)
}

// TotalRevenue reports non-cancelled order revenue for the dashboard.
func (service *Service) TotalRevenue(context context.Context) (float64, error) {
	return service.repo.TotalRevenue(context)
}
