package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizkit/quiznote/internal/config"
	"github.com/quizkit/quiznote/internal/response"
	"github.com/quizkit/quiznote/internal/service"
	"github.com/quizkit/quiznote/internal/session"
)

// FrontendHandler serves the read-only API consumed by the desktop shell and
// the VS Code extension. Mutations happen only through MCP tool calls.
type FrontendHandler struct {
	store    *config.Store
	registry *session.Registry
	history  *service.HistoryService
}

// NewFrontendHandler creates a new FrontendHandler.
func NewFrontendHandler(store *config.Store, registry *session.Registry, history *service.HistoryService) *FrontendHandler {
	return &FrontendHandler{store: store, registry: registry, history: history}
}

// GetSettings godoc
// GET /api/v1/settings
func (h *FrontendHandler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, h.store.Settings())
}

// ListSessions godoc
// GET /api/v1/sessions
func (h *FrontendHandler) ListSessions(c *gin.Context) {
	sessions := h.registry.List()
	response.Success(c, http.StatusOK, gin.H{
		"count":    len(sessions),
		"sessions": sessions,
	})
}

// ListHistory godoc
// GET /api/v1/history
func (h *FrontendHandler) ListHistory(c *gin.Context) {
	artifacts, err := h.history.List()
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"count":     len(artifacts),
		"artifacts": artifacts,
	})
}

// GetHistoryPayload godoc
// GET /api/v1/history/:name
func (h *FrontendHandler) GetHistoryPayload(c *gin.Context) {
	quiz, err := h.history.Payload(c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBadArtifactName):
			response.Fail(c, http.StatusBadRequest, response.ErrValidation)
		case errors.Is(err, service.ErrArtifactNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, quiz)
}
