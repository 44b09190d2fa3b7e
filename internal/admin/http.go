package admin

import (
	"context"
	"net/http"

	"github.com/dramacollection/storefront/internal/orders"
	"github.com/dramacollection/storefront/internal/platform/middleware"
	requestutil "github.com/dramacollection/storefront/internal/platform/request"
	"github.com/dramacollection/storefront/internal/platform/respond"
	"github.com/dramacollection/storefront/internal/platform/validate"
	"github.com/go-chi/chi/v5"
)

// ProductCounter reports the size of the live catalog for the dashboard.
type ProductCounter interface {
	CountProducts(ctx context.Context) (int, error)
}

// OrderReporter reports order volume, revenue, and the latest order rows
// for the dashboard.
type OrderReporter interface {
	CountOrders(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (float64, error)
	ListOrders(ctx context.Context, limit, offset int) ([]*orders.Order, int, error)
}

type Handler struct {
	gate     *Gate
	products ProductCounter
	orders   OrderReporter
}

func NewHandler(gate *Gate, products ProductCounter, orders OrderReporter) *Handler {
	return &Handler{
		gate:     gate,
		products: products,
		orders:   orders,
	}
}

// RegisterGateRoutes mounts the gate itself. These only require an
// authenticated identity: status and login must work for callers who are
// not (yet) elevated.
func (handler *Handler) RegisterGateRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/status", handler.gateStatus)
	router.Post("/login", handler.gateLogin)
	router.Post("/logout", handler.gateLogout)
}

// RegisterDashboardRoutes mounts the dashboard surface. The caller is
// responsible for wrapping the router with [RequireAccess].
func (handler *Handler) RegisterDashboardRoutes(router chi.Router) {
	router.Get("/stats", handler.dashboardStats)
}

// RegisterMemberRoutes mounts admin-membership management. The caller is
// responsible for wrapping the router with [RequireAccess]: only a sitting
// admin can grant or revoke.
func (handler *Handler) RegisterMemberRoutes(router chi.Router) {
	router.Put("/{email}", handler.grantMember)
	router.Delete("/{email}", handler.revokeMember)
}

type statusView struct {
	IsAdmin    bool `json:"is_admin"`
	IsElevated bool `json:"is_elevated"`
	HasAccess  bool `json:"has_access"`
}

type loginInput struct {
	Passphrase string `json:"passphrase"`
}

// recentOrderLimit bounds the dashboard's latest-orders panel.
const recentOrderLimit = 5

type statsView struct {
	ProductCount int             `json:"product_count"`
	OrderCount   int             `json:"order_count"`
	TotalRevenue float64         `json:"total_revenue"`
	RecentOrders []*orders.Order `json:"recent_orders"`
}

func (handler *Handler) gateStatus(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdmin, isElevated := handler.gate.Status(request.Context(), email)
	respond.OK(writer, statusView{
		IsAdmin:    isAdmin,
		IsElevated: isElevated,
		HasAccess:  isAdmin && isElevated,
	})
}

func (handler *Handler) gateLogin(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input loginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.gate.Login(request.Context(), email, input.Passphrase); err != nil {
		respond.Error(writer, request, err)
		return
	}

	isAdmin, isElevated := handler.gate.Status(request.Context(), email)
	respond.OK(writer, statusView{
		IsAdmin:    isAdmin,
		IsElevated: isElevated,
		HasAccess:  isAdmin && isElevated,
	})
}

func (handler *Handler) gateLogout(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.gate.Logout(request.Context(), email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) grantMember(writer http.ResponseWriter, request *http.Request) {
	grantedBy, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	email := requestutil.Param(request, "email")
	v := &validate.Validator{}
	if err := v.Email("email", email).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.gate.Grant(request.Context(), email, grantedBy); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) revokeMember(writer http.ResponseWriter, request *http.Request) {
	email := requestutil.Param(request, "email")
	v := &validate.Validator{}
	if err := v.Email("email", email).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.gate.Revoke(request.Context(), email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) dashboardStats(writer http.ResponseWriter, request *http.Request) {
	productCount, err := handler.products.CountProducts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	orderCount, err := handler.orders.CountOrders(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	revenue, err := handler.orders.TotalRevenue(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	recent, _, err := handler.orders.ListOrders(request.Context(), recentOrderLimit, 0)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if recent == nil {
		recent = []*orders.Order{}
	}

	respond.OK(writer, statsView{
		ProductCount: productCount,
		OrderCount:   orderCount,
		TotalRevenue: revenue,
		RecentOrders: recent,
	})
}
