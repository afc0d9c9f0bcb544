package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miigaik/vestnik/internal/platform/middleware"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
	"github.com/miigaik/vestnik/internal/platform/sec"
	"github.com/miigaik/vestnik/internal/platform/storage"
	"github.com/miigaik/vestnik/pkg/convert"
	"github.com/miigaik/vestnik/pkg/pagination"
	"github.com/miigaik/vestnik/pkg/query"
)

type Handler struct {
	service *Service
	media   *storage.MediaStore
}

func NewHandler(service *Service, media *storage.MediaStore) *Handler {
	return &Handler{service: service, media: media}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listArticles)
	router.Get("/{id}", handler.getArticle)
	router.Get("/{id}/download", handler.downloadPDF)
	router.Get("/{id}/read", handler.readPDF)

	// Editor/Admin only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleEditor))

		adminRoute.Post("/", handler.createArticle)
		adminRoute.Put("/{id}", handler.updateArticle)

		// Admin strict only
		adminRoute.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteArticle)
	})

	return router
}

// publicFilter reads listing filters from the query string. Drafts stay
// hidden unless the caller is an authenticated staff member asking for them.
func publicFilter(request *http.Request) Filter {
	filter := Filter{
		PublishedOnly: true,
		IssueID:       convert.ToInt(request.URL.Query().Get("issue_id")),
		Rubrics:       query.StringSlice(request.URL.Query().Get("rubric")),
	}

	if convert.ToBool(request.URL.Query().Get("include_drafts")) {
		if user := requestutil.Claims(request); user != nil && sec.UserRole(user.Role).AtLeast(sec.RoleEditor) {
			filter.PublishedOnly = false
		}
	}

	return filter
}

func (handler *Handler) listArticles(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := publicFilter(request)

	articles, total, err := handler.service.ListArticles(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Staff sees drafts; the public surface does not.
	var found *Article
	if user := requestutil.Claims(request); user != nil && sec.UserRole(user.Role).AtLeast(sec.RoleEditor) {
		found, err = handler.service.GetArticle(request.Context(), articleID)
	} else {
		found, err = handler.service.PublishedArticle(request.Context(), articleID)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) createArticle(writer http.ResponseWriter, request *http.Request) {
	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateArticle(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Article
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateArticle(request.Context(), articleID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteArticle(writer http.ResponseWriter, request *http.Request) {
	articleID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), articleID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
