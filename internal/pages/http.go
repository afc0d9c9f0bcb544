package pages

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listPages)
	router.Get("/{slug}", handler.getPage)

	return router
}

func (handler *Handler) listPages(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, List())
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	page, ok := Get(slug)
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}
	respond.OK(writer, page)
}
