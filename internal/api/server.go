// Copyright (c) 2026 Drama Collection. All rights reserved.
// Author: dev@dramacollection.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dramacollection/storefront/internal/admin"
	"github.com/dramacollection/storefront/internal/cart"
	"github.com/dramacollection/storefront/internal/catalog/category"
	"github.com/dramacollection/storefront/internal/catalog/product"
	"github.com/dramacollection/storefront/internal/favorites"
	"github.com/dramacollection/storefront/internal/orders"
	"github.com/dramacollection/storefront/internal/platform/config"
	"github.com/dramacollection/storefront/internal/platform/constants"
	"github.com/dramacollection/storefront/internal/platform/middleware"
	"github.com/dramacollection/storefront/internal/users/account"
	"github.com/dramacollection/storefront/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. Always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. Returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles authentication routes (login, register).
	Auth *auth.Handler

	// Account handles profile and session management.
	Account *account.Handler

	// Product handles the public catalogue and its admin surface.
	Product *product.Handler

	// Category handles catalogue sections and their admin surface.
	Category *category.Handler

	// Cart handles the per-identity shopping cart.
	Cart *cart.Handler

	// Favorites handles the per-identity favorites collection.
	Favorites *favorites.Handler

	// Orders handles checkout, order history, and order administration.
	Orders *orders.Handler

	// Admin handles the gate itself plus the dashboard and membership.
	Admin *admin.Handler

	// AdminGate enforces the two-factor admin check on protected groups.
	AdminGate *admin.Gate
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/me", h.Account.Routes())

		api.Route("/products", h.Product.RegisterRoutes)
		api.Route("/categories", h.Category.RegisterRoutes)

		api.Route("/cart", h.Cart.RegisterRoutes)
		api.Route("/favorites", h.Favorites.RegisterRoutes)

		api.Route("/checkout", h.Orders.RegisterCheckoutRoutes)
		api.Route("/orders", h.Orders.RegisterOrderRoutes)

		// The gate endpoints only need an authenticated identity. Everything
		// else under /admin additionally requires a passed gate check.
		api.Route("/admin", func(ar chi.Router) {
			h.Admin.RegisterGateRoutes(ar)

			ar.Group(func(protected chi.Router) {
				protected.Use(admin.RequireAccess(h.AdminGate))

				protected.Route("/dashboard", h.Admin.RegisterDashboardRoutes)
				protected.Route("/members", h.Admin.RegisterMemberRoutes)
				protected.Route("/products", h.Product.RegisterAdminRoutes)
				protected.Route("/categories", h.Category.RegisterAdminRoutes)
				protected.Route("/orders", h.Orders.RegisterAdminRoutes)
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
