package middleware

import (
	"context"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/metrics"
	"github-summarizer-api/internal/pkg/response"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const APIKeyHeader = "x-api-key"

type contextKey string

const apiKeyContextKey contextKey = "api_key"

// APIKeyMiddleware rejects requests without an x-api-key header and makes
// the presented key available through APIKeyFromContext. It does not check
// the key against the store.
func APIKeyMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if apiKey == "" {
				logger.Logger.WithField("path", r.URL.Path).Warn("Request without API key")
				m.RecordOutcome(metrics.OutcomeMissingAPIKey)
				response.Error(w, http.StatusBadRequest, "API key is required")
				return
			}

			ctx := WithAPIKey(r.Context(), apiKey)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithAPIKey(ctx context.Context, apiKey string) context.Context {
	return context.WithValue(ctx, apiKeyContextKey, apiKey)
}

func APIKeyFromContext(ctx context.Context) (string, bool) {
	apiKey, ok := ctx.Value(apiKeyContextKey).(string)
	return apiKey, ok && apiKey != ""
}
