package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miigaik/vestnik/internal/platform/middleware"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
	"github.com/miigaik/vestnik/internal/platform/sec"
	"github.com/miigaik/vestnik/pkg/convert"
	"github.com/miigaik/vestnik/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public intake
	router.Post("/", handler.submit)

	// Message management is admin-only territory.
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Get("/", handler.listMessages)
		adminRoute.Get("/{id}", handler.getMessage)
		adminRoute.Put("/{id}/processed", handler.setProcessed)
		adminRoute.Delete("/{id}", handler.deleteMessage)
	})

	return router
}

func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Message
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Submit(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) listMessages(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	unprocessedOnly := convert.ToBool(request.URL.Query().Get("unprocessed"))

	messages, total, err := handler.service.ListMessages(request.Context(), unprocessedOnly, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, messages, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getMessage(writer http.ResponseWriter, request *http.Request) {
	messageID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	message, err := handler.service.GetMessage(request.Context(), messageID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, message)
}

func (handler *Handler) setProcessed(writer http.ResponseWriter, request *http.Request) {
	messageID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Processed bool `json:"processed"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetProcessed(request.Context(), messageID, input.Processed); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteMessage(writer http.ResponseWriter, request *http.Request) {
	messageID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMessage(request.Context(), messageID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
