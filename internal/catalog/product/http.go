package product

import (
	"net/http"

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

// RegisterRoutes mounts the public, read-only catalog surface.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listProducts)
	router.Get("/{id}", handler.getProduct)
	router.Get("/slug/{slug}", handler.getProductBySlug)
}

// RegisterAdminRoutes mounts the catalog mutation surface. The caller is
// responsible for wrapping the router with the admin access middleware.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/", handler.createProduct)
	router.Patch("/{id}", handler.updateProduct)
	router.Delete("/{id}", handler.deleteProduct)
}

func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Category: request.URL.Query().Get("category"),
		Query:    request.URL.Query().Get("q"),
	}

	products, total, err := handler.service.ListProducts(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	item, err := handler.service.GetProduct(request.Context(), productID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) getProductBySlug(writer http.ResponseWriter, request *http.Request) {
	productSlug := requestutil.ID(request, "slug")

	item, err := handler.service.GetProductBySlug(request.Context(), productSlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	var input Product
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateProduct(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	var input Product
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateProduct(request.Context(), productID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	productID := requestutil.ID(request, "id")

	if err := handler.service.DeleteProduct(request.Context(), productID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
