package services

import (
	"context"
	"encoding/json"
	"fmt"
	"github-summarizer-api/internal/config"
	"github-summarizer-api/internal/pkg/errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheService interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

type RedisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(cfg *config.CacheConfig) (*RedisCacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx := context.Background()
	_, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return NewRedisCacheServiceWithClient(client), nil
}

func NewRedisCacheServiceWithClient(client *redis.Client) *RedisCacheService {
	return &RedisCacheService{client: client}
}

// Get returns the raw JSON stored under key, or errors.ErrCacheMiss.
func (c *RedisCacheService) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", errors.ErrCacheMiss
	}
	if err != nil {
		return "", errors.WrapKind(errors.ErrCacheError, err, "failed to read cache")
	}
	return value, nil
}

func (c *RedisCacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %v", err)
	}
	return c.client.Set(ctx, key, jsonData, expiration).Err()
}

func (c *RedisCacheService) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *RedisCacheService) Close() error {
	return c.client.Close()
}
