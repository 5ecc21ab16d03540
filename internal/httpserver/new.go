package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	breakdownHTTP "tasktree/internal/breakdown/delivery/http"
	tasklistHTTP "tasktree/internal/tasklist/delivery/http"
	"tasktree/pkg/log"
)

// IdentityHandler is the slice of the identity webhook handler the server
// needs for routing.
type IdentityHandler interface {
	HandleIdentityWebhook(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	tasklistHandler  tasklistHTTP.Handler
	breakdownHandler breakdownHTTP.Handler
	identityHandler  IdentityHandler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TasklistHandler  tasklistHTTP.Handler
	BreakdownHandler breakdownHTTP.Handler
	IdentityHandler  IdentityHandler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		tasklistHandler:  cfg.TasklistHandler,
		breakdownHandler: cfg.BreakdownHandler,
		identityHandler:  cfg.IdentityHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.tasklistHandler == nil {
		return errors.New("tasklist handler is required")
	}
	return nil
}
