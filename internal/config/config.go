package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultPort          = "5050"
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "gpt-3.5-turbo"
	DefaultGitHubAPIURL  = "https://api.github.com"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GitHubConfig struct {
	APIURL string
	Token  string
}

type Config struct {
	Port               string
	DatabaseURL        string
	CORSAllowedOrigins []string
	HTTPClientTimeout  time.Duration
	LogFile            string
	LogLevel           string

	OpenAI OpenAIConfig
	GitHub GitHubConfig
	Cache  *CacheConfig
}

// Load reads the service configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", DefaultPort),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		LogFile:            getEnv("LOG_FILE", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: strings.TrimRight(getEnv("OPENAI_BASE_URL", DefaultOpenAIBaseURL), "/"),
			Model:   getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		},
		GitHub: GitHubConfig{
			APIURL: strings.TrimRight(getEnv("GITHUB_API_URL", DefaultGitHubAPIURL), "/"),
			Token:  getEnv("GITHUB_TOKEN", ""),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required")
	}

	timeout, err := time.ParseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT: %v", err)
	}
	cfg.HTTPClientTimeout = timeout

	cacheCfg, err := NewCacheConfig()
	if err != nil {
		return nil, err
	}
	cfg.Cache = cacheCfg

	return cfg, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
