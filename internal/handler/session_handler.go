package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/readylabs/aiready-backend/internal/model"
	"github.com/readylabs/aiready-backend/internal/response"
	"github.com/readylabs/aiready-backend/internal/service"
	"github.com/readylabs/aiready-backend/internal/store"
	"github.com/readylabs/aiready-backend/internal/validator"
)

// SessionHandler exposes the quiz session lifecycle over HTTP.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create godoc
// POST /api/v1/quiz-sessions
// Starts a new session with default progress state.
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.sessions.Create(c.Request.Context(), req.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, session)
}

// Get godoc
// GET /api/v1/quiz-sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	session, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Update godoc
// PATCH /api/v1/quiz-sessions/:id
// Applies a partial update: answers snapshot (replaced wholesale), current
// question index, remaining time. Autosave calls land here; repeating the
// same snapshot is harmless and the latest write wins.
func (h *SessionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch model.SessionPatch
	if fields := validator.Bind(c, &patch); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.sessions.Update(c.Request.Context(), id, patch)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusOK, session)
}

// Submit godoc
// POST /api/v1/quiz-sessions/:id/submit
// Scores the session, marks it completed and returns the created result.
func (h *SessionHandler) Submit(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.sessions.Submit(c.Request.Context(), id)
	if err != nil {
		failSession(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// pathID parses a positive integer path parameter, failing the request
// with a 400 when malformed.
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return 0, false
	}
	return id, true
}

// failSession maps store errors onto HTTP statuses.
func failSession(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, store.ErrSessionCompleted):
		response.Fail(c, http.StatusConflict, response.ErrSessionCompleted)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
