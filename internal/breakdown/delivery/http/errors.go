package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktree/internal/breakdown"
)

// mapError translates domain errors into the HTTP failure taxonomy.
// Missing credentials and upstream failures both surface as a generic 500;
// the distinction stays in the server log.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, breakdown.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errResp{Error: "task is required"})
	default:
		c.JSON(http.StatusInternalServerError, errResp{Error: "Failed to generate subtasks"})
	}
}
