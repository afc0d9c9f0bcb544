package board

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
	router.Get("/", handler.listMembers)
	router.Get("/{id}", handler.getMember)

	// Editor/Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Post("/", handler.createMember)
		adminRoute.Put("/{id}", handler.updateMember)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteMember)
	})

	return router
}

func (handler *Handler) listMembers(writer http.ResponseWriter, request *http.Request) {
	members, err := handler.service.ListMembers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, members)
}

func (handler *Handler) getMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.GetMember(request.Context(), memberID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) createMember(writer http.ResponseWriter, request *http.Request) {
	var input Member
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateMember(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Member
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateMember(request.Context(), memberID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteMember(writer http.ResponseWriter, request *http.Request) {
	memberID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMember(request.Context(), memberID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
