package services

import (
	"context"
	"github-summarizer-api/internal/llm"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAPIKeyRepository struct {
	mock.Mock
}

func (m *MockAPIKeyRepository) Create(ctx context.Context, apiKey *models.APIKey) error {
	args := m.Called(ctx, apiKey)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) List(ctx context.Context) ([]models.APIKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) GetByKey(ctx context.Context, key string) (*models.APIKey, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAPIKeyRepository) UpdateKey(ctx context.Context, id uuid.UUID, newKey string) (*models.APIKey, error) {
	args := m.Called(ctx, id, newKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.APIKey), args.Error(1)
}

func (m *MockAPIKeyRepository) IncrementUsage(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// memoryAPIKeyRepository keeps records in a map and mirrors the store's
// observable behavior.
type memoryAPIKeyRepository struct {
	mu   sync.Mutex
	keys map[uuid.UUID]models.APIKey
}

func newMemoryAPIKeyRepository() *memoryAPIKeyRepository {
	return &memoryAPIKeyRepository{keys: make(map[uuid.UUID]models.APIKey)}
}

func (r *memoryAPIKeyRepository) Create(ctx context.Context, apiKey *models.APIKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.keys {
		if existing.Key == apiKey.Key {
			return errors.ErrAlreadyExists
		}
	}
	r.keys[apiKey.ID] = *apiKey
	return nil
}

func (r *memoryAPIKeyRepository) List(ctx context.Context) ([]models.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.APIKey, 0, len(r.keys))
	for _, k := range r.keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryAPIKeyRepository) GetByKey(ctx context.Context, key string) (*models.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range r.keys {
		if k.Key == key {
			found := k
			return &found, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *memoryAPIKeyRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.keys, id)
	return nil
}

func (r *memoryAPIKeyRepository) UpdateKey(ctx context.Context, id uuid.UUID, newKey string) (*models.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.keys[id]
	if !ok {
		return nil, errors.ErrNotFound
	}
	k.Key = newKey
	r.keys[id] = k
	return &k, nil
}

func (r *memoryAPIKeyRepository) IncrementUsage(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, k := range r.keys {
		if k.Key == key {
			k.Usage++
			r.keys[id] = k
			return nil
		}
	}
	return errors.ErrNotFound
}

type MockChatCompleter struct {
	mock.Mock
}

func (m *MockChatCompleter) CreateChatCompletion(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.ChatResponse), args.Error(1)
}
