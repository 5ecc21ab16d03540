package main

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"tasktree/config"
	_ "tasktree/docs" // Swagger docs
	breakdownHTTP "tasktree/internal/breakdown/delivery/http"
	breakdownUC "tasktree/internal/breakdown/usecase"
	"tasktree/internal/db"
	"tasktree/internal/httpserver"
	"tasktree/internal/identity"
	tasklistHTTP "tasktree/internal/tasklist/delivery/http"
	"tasktree/internal/tasklist/repository/postgre"
	"tasktree/internal/tasklist/repository/rediscache"
	tasklistUC "tasktree/internal/tasklist/usecase"
	"tasktree/pkg/gemini"
	"tasktree/pkg/log"
)

// @title       TaskTree API
// @description Hierarchical to-do lists with AI-generated subtask breakdowns.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting TaskTree...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	pool, err := db.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to Postgres: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		logger.Fatalf(ctx, "Failed to ensure schema: %v", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
			logger.Warnf(ctx, "Redis not available, running without cache: %v", pingErr)
			redisClient = nil
		}
	}

	cacheTTL, err := time.ParseDuration(cfg.Redis.TTL)
	if err != nil {
		cacheTTL = 0 // rediscache falls back to its default
	}

	// 4. Tasklist domain
	taskRepo := rediscache.New(postgre.New(pool, logger), redisClient, cacheTTL, logger)
	taskUC := tasklistUC.New(logger, taskRepo)
	taskHandler := tasklistHTTP.New(logger, taskUC)

	// 5. Breakdown domain
	var llm *gemini.Client
	if cfg.Gemini.APIKey != "" {
		llm = gemini.NewClient(gemini.Config{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
			APIURL: cfg.Gemini.BaseURL,
		})
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY missing, subtask generation disabled")
	}
	genHandler := breakdownHTTP.New(logger, breakdownUC.New(logger, llm))

	// 6. Identity webhooks
	var identityHandler httpserver.IdentityHandler
	if cfg.Webhook.Secret != "" {
		identityHandler = identity.NewHandler(taskUC, identity.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "WEBHOOK_SECRET missing, identity webhooks disabled")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		TasklistHandler:  taskHandler,
		BreakdownHandler: genHandler,
		IdentityHandler:  identityHandler,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
