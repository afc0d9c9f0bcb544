package info

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
	router.Get("/", handler.getInfo)

	// Editor/Admin only
	router.With(middleware.RequireRole(sec.RoleEditor)).Put("/", handler.updateInfo)

	return router
}

func (handler *Handler) getInfo(writer http.ResponseWriter, request *http.Request) {
	journalInfo, err := handler.service.Get(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, journalInfo)
}

func (handler *Handler) updateInfo(writer http.ResponseWriter, request *http.Request) {
	var input JournalInfo
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}
