package repository

import (
	"context"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type APIKeyRepository interface {
	Create(ctx context.Context, apiKey *models.APIKey) error
	List(ctx context.Context) ([]models.APIKey, error)
	GetByKey(ctx context.Context, key string) (*models.APIKey, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	UpdateKey(ctx context.Context, id uuid.UUID, newKey string) (*models.APIKey, error)
	IncrementUsage(ctx context.Context, key string) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, apiKey *models.APIKey) error {
	result := r.db.WithContext(ctx).Create(apiKey)
	if result.Error != nil {
		return errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to create API key")
	}
	return nil
}

func (r *apiKeyRepository) List(ctx context.Context) ([]models.APIKey, error) {
	apiKeys := []models.APIKey{}
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&apiKeys)
	if result.Error != nil {
		return nil, errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to list API keys")
	}
	return apiKeys, nil
}

func (r *apiKeyRepository) GetByKey(ctx context.Context, key string) (*models.APIKey, error) {
	var apiKey models.APIKey
	result := r.db.WithContext(ctx).First(&apiKey, "key = ?", key)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound
		}
		return nil, errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to get API key by key")
	}

	return &apiKey, nil
}

// DeleteByID does not report missing rows.
func (r *apiKeyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.APIKey{}, "id = ?", id)

	if result.Error != nil {
		return errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to delete API key")
	}

	return nil
}

func (r *apiKeyRepository) UpdateKey(ctx context.Context, id uuid.UUID, newKey string) (*models.APIKey, error) {
	var apiKey models.APIKey
	result := r.db.WithContext(ctx).
		Model(&apiKey).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Update("key", newKey)

	if result.Error != nil {
		return nil, errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to update API key")
	}

	if result.RowsAffected == 0 {
		return nil, errors.ErrNotFound
	}

	return &apiKey, nil
}

func (r *apiKeyRepository) IncrementUsage(ctx context.Context, key string) error {
	result := r.db.WithContext(ctx).
		Model(&models.APIKey{}).
		Where("key = ?", key).
		UpdateColumn("usage", gorm.Expr("usage + ?", 1))

	if result.Error != nil {
		return errors.WrapKind(errors.ErrDatabaseError, result.Error, "failed to increment API key usage")
	}

	if result.RowsAffected == 0 {
		return errors.ErrNotFound
	}

	return nil
}
