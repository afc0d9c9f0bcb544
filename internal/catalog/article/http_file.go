package article

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/miigaik/vestnik/internal/platform/apperr"
	requestutil "github.com/miigaik/vestnik/internal/platform/request"
	"github.com/miigaik/vestnik/internal/platform/respond"
	"github.com/miigaik/vestnik/internal/platform/storage"
)

// downloadPDF streams the article PDF as a named attachment.
func (handler *Handler) downloadPDF(writer http.ResponseWriter, request *http.Request) {
	handler.servePDF(writer, request, true)
}

// readPDF streams the article PDF inline for in-browser reading.
func (handler *Handler) readPDF(writer http.ResponseWriter, request *http.Request) {
	handler.servePDF(writer, request, false)
}

func (handler *Handler) servePDF(writer http.ResponseWriter, request *http.Request, asAttachment bool) {
	articleID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	found, pdfPath, err := handler.service.ArticlePDF(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	file, info, err := handler.media.Open(pdfPath)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(writer, request, apperr.NotFound("Article PDF"))
			return
		}
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	writer.Header().Set("Content-Type", "application/pdf")
	if asAttachment {
		writer.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="Article_%d.pdf"`, found.ID))
	} else {
		writer.Header().Set("Content-Disposition", "inline")
	}

	// ServeContent handles range requests and conditional headers, which
	// matters for browser PDF viewers fetching the file in chunks.
	http.ServeContent(writer, request, "", info.ModTime(), file)
}
