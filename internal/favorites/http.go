package favorites

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

// RegisterRoutes mounts the favorites surface. Every route requires an
// authenticated identity; the set is addressed by the caller's own email.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listFavorites)
	router.Delete("/", handler.clearFavorites)
	router.Put("/{productID}", handler.addFavorite)
	router.Delete("/{productID}", handler.removeFavorite)
}

type setView struct {
	Items []Item `json:"items"`
}

func newSetView(s *Set) setView {
	items := s.Items
	if items == nil {
		items = []Item{}
	}
	return setView{Items: items}
}

func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.List(request.Context(), email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newSetView(current))
}

func (handler *Handler) clearFavorites(writer http.ResponseWriter, request *http.Request) {
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

func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Add(request.Context(), email, requestutil.ID(request, "productID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newSetView(current))
}

func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	email, err := requestutil.RequiredEmail(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Remove(request.Context(), email, requestutil.ID(request, "productID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, newSetView(current))
}
