package handlers

import (
	"context"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"
	"github-summarizer-api/internal/pkg/response"
	"github-summarizer-api/internal/services"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// APIKeyHandler serves the key management endpoints. auditLog may be nil.
type APIKeyHandler struct {
	apiKeyService services.APIKeyService
	auditLog      services.AuditLogService
}

func NewAPIKeyHandler(apiKeyService services.APIKeyService, auditLog services.AuditLogService) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
		auditLog:      auditLog,
	}
}

type createAPIKeyRequest struct {
	Name string `json:"name" validate:"required"`
}

type deleteAPIKeyResponse struct {
	Success bool `json:"success"`
}

// ListAPIKeys returns all keys, newest first.
func (h *APIKeyHandler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	apiKeys, err := h.apiKeyService.ListAPIKeys(r.Context())
	if err != nil {
		logger.Logger.WithField("error", err).Error("Error fetching API keys")
		response.Error(w, http.StatusInternalServerError, "Failed to fetch API keys")
		return
	}

	response.JSON(w, http.StatusOK, apiKeys)
}

func (h *APIKeyHandler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req createAPIKeyRequest
	err := decodeAndValidate(r, &req)
	if err != nil || strings.TrimSpace(req.Name) == "" {
		response.Error(w, http.StatusBadRequest, "Name is required")
		return
	}

	apiKey, err := h.apiKeyService.CreateAPIKey(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidInput) {
			response.Error(w, http.StatusBadRequest, "Name is required")
			return
		}
		logger.Logger.WithField("error", err).Error("Error creating API key")
		response.Error(w, http.StatusInternalServerError, "Failed to create API key")
		return
	}

	h.audit(r.Context(), models.AuditActionKeyCreated, apiKey.ID, apiKey.Name)
	response.JSON(w, http.StatusCreated, apiKey)
}

func (h *APIKeyHandler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.apiKeyService.DeleteAPIKey(r.Context(), id); err != nil {
		logger.Logger.WithFields(logrus.Fields{
			"error":      err,
			"api_key_id": id,
		}).Error("Error deleting API key")
		response.Error(w, http.StatusInternalServerError, "Failed to delete API key")
		return
	}

	if keyID, err := uuid.Parse(id); err == nil {
		h.audit(r.Context(), models.AuditActionKeyDeleted, keyID, "")
	}
	response.JSON(w, http.StatusOK, deleteAPIKeyResponse{Success: true})
}

func (h *APIKeyHandler) RegenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	apiKey, err := h.apiKeyService.RegenerateAPIKey(r.Context(), id)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			response.Error(w, http.StatusNotFound, "API key not found")
			return
		}
		logger.Logger.WithFields(logrus.Fields{
			"error":      err,
			"api_key_id": id,
		}).Error("Error regenerating API key")
		response.Error(w, http.StatusInternalServerError, "Failed to regenerate API key")
		return
	}

	h.audit(r.Context(), models.AuditActionKeyRegenerated, apiKey.ID, apiKey.Name)
	response.JSON(w, http.StatusOK, apiKey)
}

// audit records a key event. Failures are logged and never fail the request.
func (h *APIKeyHandler) audit(ctx context.Context, action string, apiKeyID uuid.UUID, details string) {
	if h.auditLog == nil {
		return
	}
	if err := h.auditLog.RecordKeyEvent(ctx, action, apiKeyID, details); err != nil {
		logger.Logger.WithFields(logrus.Fields{
			"error":      err,
			"action":     action,
			"api_key_id": apiKeyID,
		}).Warn("Failed to record audit log")
	}
}
