package handlers

import (
	"context"
	"github-summarizer-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAPIKeyService struct {
	mock.Mock
}

func (m *MockAPIKeyService) GenerateAPIKey() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockAPIKeyService) ListAPIKeys(ctx context.Context) ([]models.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) CreateAPIKey(ctx context.Context, name string) (*models.APIKey, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) DeleteAPIKey(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPIKeyService) RegenerateAPIKey(ctx context.Context, id string) (*models.APIKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyService) ValidateAPIKey(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAPIKeyService) RecordUsage(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockReadmeFetcher struct {
	mock.Mock
}

func (m *MockReadmeFetcher) FetchReadme(ctx context.Context, githubURL string) (string, error) {
	args := m.Called(ctx, githubURL)
	return args.String(0), args.Error(1)
}

type MockSummarizerService struct {
	mock.Mock
}

func (m *MockSummarizerService) SummarizeReadme(ctx context.Context, readmeContent string) (*models.SummaryResult, error) {
	args := m.Called(ctx, readmeContent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SummaryResult), args.Error(1)
}

type MockAuditLogService struct {
	mock.Mock
}

func (m *MockAuditLogService) GetAuditLogs(ctx context.Context, page, pageSize int) ([]models.AuditLog, int64, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.AuditLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditLogService) RecordKeyEvent(ctx context.Context, action string, apiKeyID uuid.UUID, details string) error {
	args := m.Called(ctx, action, apiKeyID, details)
	return args.Error(0)
}
