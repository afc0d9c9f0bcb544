package issue

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miigaik/vestnik/internal/platform/middleware"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
	"github.com/miigaik/vestnik/internal/platform/sec"
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

	// Public
	router.Get("/", handler.listIssues)
	router.Get("/{id}", handler.getIssue)

	// Editor/Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Post("/", handler.createIssue)
		adminRoute.Put("/{id}", handler.updateIssue)
		adminRoute.Post("/{id}/current", handler.setCurrent)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteIssue)
	})

	return router
}

func (handler *Handler) listIssues(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	issues, total, err := handler.service.ListIssues(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, issues, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	issue, err := handler.service.GetIssue(request.Context(), issueID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, issue)
}

func (handler *Handler) createIssue(writer http.ResponseWriter, request *http.Request) {
	var input Issue
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateIssue(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Issue
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateIssue(request.Context(), issueID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) setCurrent(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetCurrent(request.Context(), issueID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) deleteIssue(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteIssue(request.Context(), issueID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
