package archive

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miigaik/vestnik/internal/platform/middleware"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
	"github.com/miigaik/vestnik/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listRanges)
	router.Get("/{span}", handler.listing)

	// Editor/Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Get("/manage", handler.listAllRanges)
		adminRoute.Post("/", handler.createRange)
		adminRoute.Put("/{id}", handler.updateRange)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteRange)
	})

	return router
}

func (handler *Handler) listRanges(writer http.ResponseWriter, request *http.Request) {
	ranges, err := handler.service.ActiveRanges(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ranges)
}

// listAllRanges includes deactivated ranges for the admin screens.
func (handler *Handler) listAllRanges(writer http.ResponseWriter, request *http.Request) {
	ranges, err := handler.service.ListRanges(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ranges)
}

func (handler *Handler) listing(writer http.ResponseWriter, request *http.Request) {
	span := requestutil.Param(request, "span")

	listing, err := handler.service.Listing(request.Context(), span)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, listing)
}

func (handler *Handler) createRange(writer http.ResponseWriter, request *http.Request) {
	var input Range
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateRange(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateRange(writer http.ResponseWriter, request *http.Request) {
	rangeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Range
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateRange(request.Context(), rangeID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteRange(writer http.ResponseWriter, request *http.Request) {
	rangeID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteRange(request.Context(), rangeID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
