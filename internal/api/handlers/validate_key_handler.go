package handlers

import (
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/pkg/response"
	"github-summarizer-api/internal/services"
	"net/http"
)

type ValidateKeyHandler struct {
	validator services.APIKeyValidator
}

func NewValidateKeyHandler(validator services.APIKeyValidator) *ValidateKeyHandler {
	return &ValidateKeyHandler{validator: validator}
}

type validateKeyRequest struct {
	APIKey string `json:"apiKey" validate:"required"`
}

type validateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidateKey backs the playground: 200 for a known key, 401 otherwise.
func (h *ValidateKeyHandler) ValidateKey(w http.ResponseWriter, r *http.Request) {
	var req validateKeyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "API key is required")
		return
	}

	valid, err := h.validator.ValidateAPIKey(r.Context(), req.APIKey)
	if err != nil {
		logger.Logger.WithField("error", err).Error("Error validating API key")
	}
	if err != nil || !valid {
		response.JSON(w, http.StatusUnauthorized, validateKeyResponse{Valid: false, Error: "Invalid API key"})
		return
	}

	response.JSON(w, http.StatusOK, validateKeyResponse{Valid: true, Message: "Valid API key"})
}
