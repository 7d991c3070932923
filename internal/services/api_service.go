package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"
	"github-summarizer-api/internal/repository"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// apiKeyEntropyBytes is the number of random bytes behind each key.
const apiKeyEntropyBytes = 16

// APIKeyValidator answers whether a presented key exists.
type APIKeyValidator interface {
	ValidateAPIKey(ctx context.Context, key string) (bool, error)
}

type APIKeyService interface {
	APIKeyValidator
	GenerateAPIKey() (string, error)
	ListAPIKeys(ctx context.Context) ([]models.APIKey, error)
	CreateAPIKey(ctx context.Context, name string) (*models.APIKey, error)
	DeleteAPIKey(ctx context.Context, id string) error
	RegenerateAPIKey(ctx context.Context, id string) (*models.APIKey, error)
	RecordUsage(ctx context.Context, key string) error
}

type apiKeyService struct {
	apiKeyRepo repository.APIKeyRepository
	random     io.Reader
	now        func() time.Time
}

func NewAPIKeyService(apiKeyRepo repository.APIKeyRepository) APIKeyService {
	return &apiKeyService{
		apiKeyRepo: apiKeyRepo,
		random:     rand.Reader,
		now:        time.Now,
	}
}

// GenerateAPIKey returns "key_" followed by 16 random bytes in hex.
func (s *apiKeyService) GenerateAPIKey() (string, error) {
	buf := make([]byte, apiKeyEntropyBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return models.APIKeyPrefix + hex.EncodeToString(buf), nil
}

func (s *apiKeyService) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	return s.apiKeyRepo.List(ctx)
}

func (s *apiKeyService) CreateAPIKey(ctx context.Context, name string) (*models.APIKey, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.WrapKind(errors.ErrInvalidInput, nil, "name is required")
	}

	key, err := s.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	apiKey := &models.APIKey{
		ID:        uuid.New(),
		Name:      name,
		Key:       key,
		Type:      models.DefaultAPIKeyType,
		Usage:     0,
		CreatedAt: s.now().UTC(),
	}

	if err := s.apiKeyRepo.Create(ctx, apiKey); err != nil {
		return nil, err
	}

	logger.LogEvent(logrus.InfoLevel, "API key created", logrus.Fields{
		"api_key_id": apiKey.ID,
		"name":       apiKey.Name,
	})

	return apiKey, nil
}

// DeleteAPIKey is idempotent: an id that matches nothing, including one
// that is not a UUID, is not an error.
func (s *apiKeyService) DeleteAPIKey(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		logger.Logger.WithField("api_key_id", id).Debug("Delete requested for malformed API key id")
		return nil
	}

	if err := s.apiKeyRepo.DeleteByID(ctx, parsed); err != nil {
		return err
	}

	logger.LogEvent(logrus.InfoLevel, "API key deleted", logrus.Fields{
		"api_key_id": parsed,
	})
	return nil
}

func (s *apiKeyService) RegenerateAPIKey(ctx context.Context, id string) (*models.APIKey, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrNotFound
	}

	key, err := s.GenerateAPIKey()
	if err != nil {
		return nil, err
	}

	apiKey, err := s.apiKeyRepo.UpdateKey(ctx, parsed, key)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logrus.InfoLevel, "API key regenerated", logrus.Fields{
		"api_key_id": apiKey.ID,
	})

	return apiKey, nil
}

// ValidateAPIKey reports (false, nil) for unknown keys; an error means the
// store could not be queried.
func (s *apiKeyService) ValidateAPIKey(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}

	_, err := s.apiKeyRepo.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *apiKeyService) RecordUsage(ctx context.Context, key string) error {
	return s.apiKeyRepo.IncrementUsage(ctx, key)
}
