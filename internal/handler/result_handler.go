package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/export"
	"github.com/readylabs/aiready-backend/internal/model"
	"github.com/readylabs/aiready-backend/internal/response"
	"github.com/readylabs/aiready-backend/internal/service"
	"github.com/readylabs/aiready-backend/internal/store"
)

// ResultHandler serves scored quiz results and their export.
type ResultHandler struct {
	sessions *service.SessionService
	catalog  *catalog.Catalog
	exporter *export.PDFExporter
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(sessions *service.SessionService, cat *catalog.Catalog, exporter *export.PDFExporter) *ResultHandler {
	return &ResultHandler{sessions: sessions, catalog: cat, exporter: exporter}
}

// ListBySession godoc
// GET /api/v1/quiz-results/session/:sessionId
// Returns every result recorded for a session (normally zero or one).
func (h *ResultHandler) ListBySession(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionId")
	if !ok {
		return
	}

	results, err := h.sessions.Results(c.Request.Context(), sessionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, results)
}

// Export godoc
// GET /api/v1/quiz-results/:id/export
// Streams the result as a PDF. With ?format=descriptor, or when the PDF
// renderer is unavailable, responds with the legacy descriptor object
// instead so export never blocks on a missing font.
func (h *ResultHandler) Export(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.sessions.Result(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrResultNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if c.Query("format") == "descriptor" {
		response.Success(c, http.StatusOK, descriptorFor(result))
		return
	}

	// The session snapshot feeds the per-question answers section. A
	// result outlives its session only if the row was removed out of band,
	// in which case the PDF simply omits the answers.
	session, err := h.sessions.Get(c.Request.Context(), result.SessionID)
	if err != nil {
		session = nil
	}

	pdf, err := h.exporter.Render(result, session, h.catalog.ListAll())
	if err != nil {
		if errors.Is(err, export.ErrRendererUnavailable) {
			response.Success(c, http.StatusOK, descriptorFor(result))
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	filename := fmt.Sprintf("quiz-result-%d.pdf", result.ID)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func descriptorFor(result *model.QuizResult) model.ExportDescriptor {
	return model.ExportDescriptor{
		Message:     "PDF export is generated on demand",
		DownloadURL: fmt.Sprintf("/downloads/quiz-result-%d.pdf", result.ID),
	}
}
