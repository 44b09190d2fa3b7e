package cart

import (
	"net/http"

	"github.com/dramacollection/storefront/internal/platform/middleware"
	requestutil "github.com/dramacollection/storefront/internal/platform/request"
	"github.com/dramacollection/storefront/internal/platform/respond"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the cart surface. Every route requires an
// authenticated identity; the cart is addressed by the caller's own email.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.getCart)
	router.Delete("/", handler.clearCart)

	router.Post("/items", handler.addItem)
	router.Patch("/items/{id}/increase", handler.increaseItem)
	router.Patch("/items/{id}/decrease", handler.decreaseItem)

	// DELETE on a line decrements it (removing at zero); /all drops the
	// whole line regardless of quantity.
	router.Delete("/items/{id}", handler.decreaseItem)
	router.Delete("/items/{id}/all", handler.removeItem)
}

type addItemInput struct {
	ProductID string `json:"product_id"`
}

type cartView struct {
	Lines []Line  `json:"lines"`
	Total float64 `json:"total"`
}

func newCartView(c *Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	return cartView{Lines: lines, Total: c.Total()}
}

func (handler *Handler) getCart(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Get(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newCartView(current))
}

func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addItemInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.AddProduct(request.Context(), email, input.ProductID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newCartView(current))
}

func (handler *Handler) increaseItem(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Increase(request.Context(), email, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newCartView(current))
}

func (handler *Handler) decreaseItem(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Decrease(request.Context(), email, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newCartView(current))
}

func (handler *Handler) removeItem(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.RemoveLine(request.Context(), email, requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newCartView(current))
}

func (handler *Handler) clearCart(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Clear(request.Context(), email); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
