package handlers

import (
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/metrics"
	"github-summarizer-api/internal/middleware"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/response"
	"github-summarizer-api/internal/services"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

const processingFailedMessage = "Failed to process request"

// SummarizerHandler runs the key-gated README summarization pipeline.
// Expects APIKeyMiddleware in front of it.
type SummarizerHandler struct {
	apiKeyService services.APIKeyService
	fetcher       services.ReadmeFetcher
	summarizer    services.SummarizerService
	metrics       *metrics.Metrics
}

func NewSummarizerHandler(
	apiKeyService services.APIKeyService,
	fetcher services.ReadmeFetcher,
	summarizer services.SummarizerService,
	m *metrics.Metrics,
) *SummarizerHandler {
	return &SummarizerHandler{
		apiKeyService: apiKeyService,
		fetcher:       fetcher,
		summarizer:    summarizer,
		metrics:       m,
	}
}

type summarizeRequest struct {
	GithubURL string `json:"githubUrl" validate:"required"`
}

func (h *SummarizerHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apiKey, ok := middleware.APIKeyFromContext(ctx)
	if !ok {
		h.metrics.RecordOutcome(metrics.OutcomeMissingAPIKey)
		response.Error(w, http.StatusBadRequest, "API key is required")
		return
	}

	var req summarizeRequest
	if err := decodeAndValidate(r, &req); err != nil || strings.TrimSpace(req.GithubURL) == "" {
		h.metrics.RecordOutcome(metrics.OutcomeMissingURL)
		response.Error(w, http.StatusBadRequest, "GitHub URL is required")
		return
	}
	githubURL := strings.TrimSpace(req.GithubURL)
	log := logger.Logger.WithField("repository", githubURL)

	valid, err := h.apiKeyService.ValidateAPIKey(ctx, apiKey)
	if err != nil {
		log.WithField("error", err).Error("Error validating API key")
	}
	if err != nil || !valid {
		h.metrics.RecordOutcome(metrics.OutcomeInvalidAPIKey)
		response.Error(w, http.StatusUnauthorized, "Invalid API key")
		return
	}

	readme, err := h.fetcher.FetchReadme(ctx, githubURL)
	if err != nil {
		log.WithField("error", err).Error("Error fetching README")
		h.metrics.RecordOutcome(metrics.OutcomeFetchFailed)
		response.Error(w, http.StatusInternalServerError, processingFailedMessage)
		return
	}
	log.WithField("readme_bytes", len(readme)).Debug("README fetched")

	summary, err := h.summarizer.SummarizeReadme(ctx, readme)
	if err != nil {
		log.WithField("error", err).Error("Error processing GitHub summarizer request")
		h.metrics.RecordOutcome(metrics.OutcomeSummarizeFailed)
		response.Error(w, http.StatusInternalServerError, processingFailedMessage)
		return
	}

	if err := h.apiKeyService.RecordUsage(ctx, apiKey); err != nil {
		log.WithField("error", err).Warn("Failed to record API key usage")
	}

	log.WithFields(logrus.Fields{
		"summary":    summary.Summary,
		"cool_facts": summary.CoolFacts,
	}).Info("Repository summarized")
	h.metrics.RecordOutcome(metrics.OutcomeSuccess)
	response.JSON(w, http.StatusOK, models.NewSummaryResponse(githubURL, summary))
}
