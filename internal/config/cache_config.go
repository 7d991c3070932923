package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type CacheConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	DefaultTTL    time.Duration
}

// NewCacheConfig returns nil when REDIS_HOST is unset or empty, which
// disables README caching.
func NewCacheConfig() (*CacheConfig, error) {
	if os.Getenv("REDIS_HOST") == "" {
		return nil, nil
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %v", err)
	}

	ttl, err := time.ParseDuration(getEnv("README_CACHE_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid README_CACHE_TTL: %v", err)
	}

	return &CacheConfig{
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		DefaultTTL:    ttl,
	}, nil
}

func (c *CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
