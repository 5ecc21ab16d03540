package http

import (
	"github.com/gin-gonic/gin"

	"tasktree/internal/tasklist"
	"tasktree/pkg/log"
)

// Handler is the public interface for the tasklist HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Save(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc tasklist.UseCase
}

// New creates a new HTTP handler for the tasklist domain.
func New(l log.Logger, uc tasklist.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
