package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "crusaiders.backend/internal/domain/errors"
	"crusaiders.backend/internal/interfaces/http/response"
	"crusaiders.backend/internal/usecases"
)

type ContentHandler struct {
	content *usecases.ContentUsecase
}

func NewContentHandler(content *usecases.ContentUsecase) *ContentHandler {
	return &ContentHandler{content: content}
}

// ListTeamMembers returns the team roster for the public team section.
// GET /api/team
func (h *ContentHandler) ListTeamMembers(c *gin.Context) {
	items, err := h.content.ListTeamMembers(c.Request.Context())
	if err != nil {
		response.Error(c, domainerrors.Internal("Failed to fetch team members", err))
		return
	}
	response.Success(c, http.StatusOK, items)
}

// ListProjects returns the project showcase.
// GET /api/projects
func (h *ContentHandler) ListProjects(c *gin.Context) {
	items, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		response.Error(c, domainerrors.Internal("Failed to fetch projects", err))
		return
	}
	response.Success(c, http.StatusOK, items)
}
