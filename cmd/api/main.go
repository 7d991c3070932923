package main

import (
	"context"
	"errors"
	"github-summarizer-api/internal/api"
	"github-summarizer-api/internal/api/controllers"
	"github-summarizer-api/internal/api/handlers"
	"github-summarizer-api/internal/config"
	"github-summarizer-api/internal/database"
	"github-summarizer-api/internal/llm"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/metrics"
	"github-summarizer-api/internal/repository"
	"github-summarizer-api/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logger.Logger.Warnf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatalf("Invalid configuration: %v", err)
	}

	logCloser, err := logger.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		logger.Logger.Fatalf("Failed to configure logger: %v", err)
	}
	defer logCloser.Close()

	// Initialize database connection
	db, err := database.InitDB(cfg.DatabaseURL)
	if err != nil {
		logger.Logger.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatalf("Failed to get underlying *sql.DB instance: %v", err)
	}
	defer sqlDB.Close()

	httpClient := &http.Client{Timeout: cfg.HTTPClientTimeout}

	// README cache is optional
	var cache services.CacheService
	var cacheTTL time.Duration
	if cfg.Cache != nil {
		redisCache, err := services.NewRedisCacheService(cfg.Cache)
		if err != nil {
			logger.Logger.Fatalf("Failed to initialize cache: %v", err)
		}
		defer redisCache.Close()
		cache = redisCache
		cacheTTL = cfg.Cache.DefaultTTL
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Initialize repositories and services
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	apiKeyService := services.NewAPIKeyService(apiKeyRepo)
	auditLogService := services.NewAuditLogService(repository.NewAuditLogRepository(db))
	readmeFetcher := services.NewReadmeFetcher(cfg.GitHub, httpClient, cache, cacheTTL)
	llmClient := llm.NewClient(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, httpClient)
	summarizerService := services.NewSummarizerService(llmClient, cfg.OpenAI.Model)

	router := api.SetupRoutes(api.RouterConfig{
		APIKeyHandler:      handlers.NewAPIKeyHandler(apiKeyService, auditLogService),
		SummarizerHandler:  handlers.NewSummarizerHandler(apiKeyService, readmeFetcher, summarizerService, appMetrics),
		ValidateKeyHandler: handlers.NewValidateKeyHandler(apiKeyService),
		AuditLogHandler:    handlers.NewAuditLogHandler(auditLogService),
		HealthHandler:      controllers.HealthCheckHandler(sqlDB, cfg.GitHub.APIURL, httpClient),
		Metrics:            appMetrics,
	})

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-API-Key",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	// LLM calls can be slow; the write timeout must outlast the outbound client timeout.
	srv := &http.Server{
		Handler:      corsMiddleware.Handler(router),
		Addr:         ":" + cfg.Port,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2*cfg.HTTPClientTimeout + 15*time.Second,
	}

	go func() {
		logger.Logger.Infof("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Logger.Info("Server stopped")
}
