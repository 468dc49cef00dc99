package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/response"
)

// QuestionHandler serves the read-only question catalog.
type QuestionHandler struct {
	catalog *catalog.Catalog
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(cat *catalog.Catalog) *QuestionHandler {
	return &QuestionHandler{catalog: cat}
}

// List godoc
// GET /api/v1/questions
// Returns every question ordered by its catalog position.
func (h *QuestionHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalog.ListAll())
}

// ListByCategory godoc
// GET /api/v1/questions/category/:category
// Returns the questions in one category, keeping catalog order. An unknown
// category yields an empty list, not a 404.
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	questions := h.catalog.ListByCategory(c.Param("category"))
	response.Success(c, http.StatusOK, questions)
}
