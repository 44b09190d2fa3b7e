package orders

import (
	"net/http"

	"github.com/dramacollection/storefront/internal/platform/middleware"
	requestutil "github.com/dramacollection/storefront/internal/platform/request"
	"github.com/dramacollection/storefront/internal/platform/respond"
	"github.com/dramacollection/storefront/pkg/pagination"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterCheckoutRoutes mounts the customer-facing checkout surface.
func (handler *Handler) RegisterCheckoutRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.checkout)
}

// RegisterOrderRoutes mounts the customer's own order history.
func (handler *Handler) RegisterOrderRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listMyOrders)
}

// RegisterAdminRoutes mounts the back-office order book. The caller is
// responsible for wrapping the router with the admin access middleware.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Get("/", handler.listOrders)
	router.Get("/{id}", handler.getOrder)
	router.Patch("/{id}/status", handler.updateStatus)
}

type statusInput struct {
	Status Status `json:"status"`
}

func (handler *Handler) checkout(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Checkout(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, result)
}

func (handler *Handler) listMyOrders(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	paginationParams := pagination.FromRequest(request)

	result, total, err := handler.service.ListOrdersByEmail(request.Context(), email, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	result, total, err := handler.service.ListOrders(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, result, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	order, err := handler.service.GetOrder(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	var input statusInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStatus(request.Context(), requestutil.ID(request, "id"), input.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
