package middleware

import (
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/metrics"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs the details of each request and response and
// records request metrics labelled by route template.
func LoggingMiddleware(m *metrics.Metrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer to capture the status code
			rw := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(rw, r)

			elapsed := time.Since(start)
			path := routeTemplate(r)

			logger.LogEvent(logrus.InfoLevel, "Request handled", logrus.Fields{
				"method":        r.Method,
				"url":           r.URL.Path,
				"status_code":   rw.statusCode,
				"response_time": elapsed.Milliseconds(),
				"ip":            r.RemoteAddr,
			})
			m.ObserveRequest(r.Method, path, rw.statusCode, elapsed)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return r.URL.Path
}

// responseWriter is a wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
