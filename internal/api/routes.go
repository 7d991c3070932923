package api

import (
	"github-summarizer-api/internal/api/handlers"
	"github-summarizer-api/internal/metrics"
	"github-summarizer-api/internal/middleware"
	"net/http"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	APIKeyHandler      *handlers.APIKeyHandler
	SummarizerHandler  *handlers.SummarizerHandler
	ValidateKeyHandler *handlers.ValidateKeyHandler
	AuditLogHandler    *handlers.AuditLogHandler
	HealthHandler      http.HandlerFunc
	Metrics            *metrics.Metrics
}

// SetupRoutes mounts every endpoint both at the root and under /api, the
// latter using the path names the dashboard calls.
func SetupRoutes(cfg RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.LoggingMiddleware(cfg.Metrics))

	requireAPIKey := middleware.APIKeyMiddleware(cfg.Metrics)
	summarize := requireAPIKey(http.HandlerFunc(cfg.SummarizerHandler.Summarize))

	for _, prefix := range []string{"", "/api"} {
		router.HandleFunc(prefix+"/keys", cfg.APIKeyHandler.ListAPIKeys).Methods(http.MethodGet)
		router.HandleFunc(prefix+"/keys", cfg.APIKeyHandler.CreateAPIKey).Methods(http.MethodPost)
		router.HandleFunc(prefix+"/keys/{id}", cfg.APIKeyHandler.DeleteAPIKey).Methods(http.MethodDelete)
		router.HandleFunc(prefix+"/keys/{id}/regenerate", cfg.APIKeyHandler.RegenerateAPIKey).Methods(http.MethodPost)
		router.HandleFunc(prefix+"/validate-key", cfg.ValidateKeyHandler.ValidateKey).Methods(http.MethodPost)
		if cfg.AuditLogHandler != nil {
			router.HandleFunc(prefix+"/audit-logs", cfg.AuditLogHandler.ListAuditLogs).Methods(http.MethodGet)
		}
	}
	router.Handle("/summarize", summarize).Methods(http.MethodPost)
	router.Handle("/api/github-summarizer", summarize).Methods(http.MethodPost)

	if cfg.HealthHandler != nil {
		router.HandleFunc("/health", cfg.HealthHandler).Methods(http.MethodGet)
	}
	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	return router
}
