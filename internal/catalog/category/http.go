package category

import (
	"net/http"

	"github.com/dramacollection/storefront/internal/platform/apperr"
	requestutil "github.com/dramacollection/storefront/internal/platform/request"
	"github.com/dramacollection/storefront/internal/platform/respond"
	"github.com/dramacollection/storefront/pkg/convert"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public, read-only category surface.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCategories)
	router.Get("/{slug}", handler.getCategory)
}

// RegisterAdminRoutes mounts the category mutation surface. The caller is
// responsible for wrapping the router with the admin access middleware.
func (handler *Handler) RegisterAdminRoutes(router chi.Router) {
	router.Post("/", handler.createCategory)
	router.Patch("/{id}", handler.updateCategory)
	router.Delete("/{id}", handler.deleteCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categorySlug := requestutil.ID(request, "slug")

	item, err := handler.service.GetCategoryBySlug(request.Context(), categorySlug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID := convert.ToInt(requestutil.ID(request, "id"))
	if categoryID <= 0 {
		respond.Error(writer, request, apperr.NotFound("Category"))
		return
	}

	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), categoryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID := convert.ToInt(requestutil.ID(request, "id"))
	if categoryID <= 0 {
		respond.Error(writer, request, apperr.NotFound("Category"))
		return
	}

	if err := handler.service.DeleteCategory(request.Context(), categoryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
