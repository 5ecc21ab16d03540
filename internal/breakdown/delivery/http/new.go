package http

import (
	"github.com/gin-gonic/gin"

	"tasktree/internal/breakdown"
	"tasktree/pkg/log"
)

// Handler is the public interface for the breakdown HTTP delivery layer.
type Handler interface {
	Generate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc breakdown.UseCase
}

// New creates a new HTTP handler for the breakdown domain.
func New(l log.Logger, uc breakdown.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
