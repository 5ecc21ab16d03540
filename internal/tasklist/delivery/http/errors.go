package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"tasktree/internal/tasklist"
	"tasktree/pkg/response"
)

// mapError translates domain errors into the HTTP failure taxonomy.
// Unknown errors become a generic 500; detail stays in the server log.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tasklist.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, tasklist.ErrMalformedRecord):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
