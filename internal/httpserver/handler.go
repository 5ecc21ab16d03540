package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	breakdownHTTP "tasktree/internal/breakdown/delivery/http"
	"tasktree/internal/middleware"
	tasklistHTTP "tasktree/internal/tasklist/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.Cors())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	tasklistHTTP.RegisterRoutes(api, srv.tasklistHandler)

	if srv.breakdownHandler != nil {
		breakdownHTTP.RegisterRoutes(api, srv.breakdownHandler)
	} else {
		srv.l.Warn(ctx, "Breakdown handler not configured, skipping generation route")
	}

	if srv.identityHandler != nil {
		api.POST("/webhooks/identity", srv.identityHandler.HandleIdentityWebhook)
	} else {
		srv.l.Warn(ctx, "Identity handler not configured, skipping webhook route")
	}
}
