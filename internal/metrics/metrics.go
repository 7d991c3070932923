package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pipeline outcomes recorded for every summarize request.
const (
	OutcomeMissingAPIKey   = "missing_api_key"
	OutcomeMissingURL      = "missing_url"
	OutcomeInvalidAPIKey   = "invalid_api_key"
	OutcomeFetchFailed     = "fetch_failed"
	OutcomeSummarizeFailed = "summarize_failed"
	OutcomeSuccess         = "success"
)

// Metrics contains Prometheus metrics for the HTTP API. A nil *Metrics
// records nothing.
type Metrics struct {
	registry prometheus.Gatherer

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	pipelineOutcomes *prometheus.CounterVec
}

// New registers the collectors with reg. Use prometheus.NewRegistry in tests.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,

		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "summarizer_http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),

		pipelineOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summarizer_pipeline_outcomes_total",
				Help: "Summarize requests by terminal pipeline state",
			},
			[]string{"outcome"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func (m *Metrics) RecordOutcome(outcome string) {
	if m == nil {
		return
	}
	m.pipelineOutcomes.WithLabelValues(outcome).Inc()
}

// Handler returns an HTTP handler for the Prometheus metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorHandling: promhttp.ContinueOnError,
	})
}
