package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/credvault/credvault-backend/internal/auth"
	"github.com/credvault/credvault-backend/internal/projects/domain"
)

// Fixed client-facing messages. Storage failures never leak internals;
// validation failures never enumerate which field was missing.
const (
	msgValidation    = "Project name, clone link, and authorization password are required"
	msgNotFound      = "Project not found or access denied"
	msgDeleted       = "Project deleted successfully"
	msgErrFetching   = "Error fetching projects"
	msgErrCreating   = "Error creating project"
	msgErrUpdating   = "Error updating project"
	msgErrDeleting   = "Error deleting project"
)

func (h *Handler) list(c *gin.Context) {
	callerID := auth.UserID(c)

	items, err := h.svc.List(c.Request.Context(), callerID)
	if err != nil {
		slog.Error("list projects", slog.String("owner", callerID), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgErrFetching})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgValidation})
		return
	}

	callerID := auth.UserID(c)
	p, err := h.svc.Create(c.Request.Context(), callerID, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgValidation})
			return
		}
		slog.Error("create project", slog.String("owner", callerID), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgErrCreating})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	var req projectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgValidation})
		return
	}

	callerID := auth.UserID(c)
	p, err := h.svc.Update(c.Request.Context(), callerID, id, req.toInput())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": msgValidation})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		default:
			slog.Error("update project", slog.String("owner", callerID), slog.Any("error", err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": msgErrUpdating})
		}
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	callerID := auth.UserID(c)

	if err := h.svc.Delete(c.Request.Context(), callerID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
			return
		}
		slog.Error("delete project", slog.String("owner", callerID), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgErrDeleting})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgDeleted})
}

func (r projectReq) toInput() domain.ProjectInput {
	return domain.ProjectInput{
		ProjectName:       r.ProjectName,
		CloneLink:         r.CloneLink,
		AuthorizationPass: r.AuthorizationPass,
		FrontendEnv:       r.FrontendEnv,
		BackendEnv:        r.BackendEnv,
	}
}
