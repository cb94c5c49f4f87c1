package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktrack/internal/model"
	"tasktrack/internal/service"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	Auth       *service.AuthService
	Tasks      *service.TaskService
	Categories *service.CategoryService
}

func NewHandler(auth *service.AuthService, tasks *service.TaskService, categories *service.CategoryService) *Handler {
	return &Handler{Auth: auth, Tasks: tasks, Categories: categories}
}

// userID extracts the authenticated user id placed in the context by the
// auth middleware.
func userID(c *gin.Context) uint {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// writeError maps domain errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrDuplicateName), errors.Is(err, model.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
