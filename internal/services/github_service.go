package services

import (
	"context"
	"encoding/json"
	"fmt"
	"github-summarizer-api/internal/config"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	githubRawAccept    = "application/vnd.github.v3.raw"
	githubUserAgent    = "github-summarizer-api"
	readmeCachePrefix  = "readme:"
	maxReadmeSizeBytes = 1 << 20
)

var githubHosts = map[string]bool{
	"github.com":     true,
	"www.github.com": true,
}

type ReadmeFetcher interface {
	FetchReadme(ctx context.Context, githubURL string) (string, error)
}

type githubReadmeFetcher struct {
	apiURL   string
	token    string
	client   *http.Client
	cache    CacheService
	cacheTTL time.Duration
}

// NewReadmeFetcher builds a fetcher against the GitHub contents API. cache may
// be nil, in which case every call goes upstream.
func NewReadmeFetcher(cfg config.GitHubConfig, client *http.Client, cache CacheService, cacheTTL time.Duration) ReadmeFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &githubReadmeFetcher{
		apiURL:   strings.TrimRight(cfg.APIURL, "/"),
		token:    cfg.Token,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// ParseRepositoryURL extracts owner and name from a github.com URL such as
// https://github.com/owner/repo or https://github.com/owner/repo.git. Query
// strings and fragments are ignored.
func ParseRepositoryURL(githubURL string) (*models.Repository, error) {
	u, err := url.Parse(strings.TrimSpace(githubURL))
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || !githubHosts[strings.ToLower(u.Host)] {
		return nil, errors.WrapKind(errors.ErrInvalidInput, err, fmt.Sprintf("not a GitHub repository URL: %q", githubURL))
	}

	path := strings.TrimPrefix(u.Path, "/")
	path = strings.TrimSuffix(path, "/")
	path = strings.TrimSuffix(path, ".git")

	segments := strings.Split(path, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return nil, errors.WrapKind(errors.ErrInvalidInput, nil, fmt.Sprintf("expected owner/repo in GitHub URL: %q", githubURL))
	}

	return &models.Repository{Owner: segments[0], Name: segments[1]}, nil
}

func (f *githubReadmeFetcher) FetchReadme(ctx context.Context, githubURL string) (string, error) {
	repo, err := ParseRepositoryURL(githubURL)
	if err != nil {
		return "", err
	}

	cacheKey := readmeCachePrefix + repo.FullName()
	if content, ok := f.readCache(ctx, cacheKey); ok {
		return content, nil
	}

	content, err := f.fetchFromGitHub(ctx, repo)
	if err != nil {
		return "", err
	}

	f.writeCache(ctx, cacheKey, content)
	return content, nil
}

func (f *githubReadmeFetcher) fetchFromGitHub(ctx context.Context, repo *models.Repository) (string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/readme", f.apiURL, url.PathEscape(repo.Owner), url.PathEscape(repo.Name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", errors.WrapKind(errors.ErrFetchFailed, err, "failed to build README request")
	}
	req.Header.Set("Accept", githubRawAccept)
	req.Header.Set("User-Agent", githubUserAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", errors.WrapKind(errors.ErrFetchFailed, err, "README request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", errors.WrapKind(errors.ErrFetchFailed, nil, fmt.Sprintf("GitHub returned status %d for %s", resp.StatusCode, repo.FullName()))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReadmeSizeBytes+1))
	if err != nil {
		return "", errors.WrapKind(errors.ErrFetchFailed, err, "failed to read README body")
	}
	if len(body) > maxReadmeSizeBytes {
		return "", errors.WrapKind(errors.ErrFetchFailed, nil, fmt.Sprintf("README for %s exceeds %d bytes", repo.FullName(), maxReadmeSizeBytes))
	}

	return string(body), nil
}

func (f *githubReadmeFetcher) readCache(ctx context.Context, key string) (string, bool) {
	if f.cache == nil {
		return "", false
	}

	raw, err := f.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, errors.ErrCacheMiss) {
			logger.Logger.WithFields(logrus.Fields{"error": err, "key": key}).Warn("README cache read failed")
		}
		return "", false
	}

	var content string
	if err := json.Unmarshal([]byte(raw), &content); err != nil {
		logger.Logger.WithFields(logrus.Fields{"error": err, "key": key}).Warn("Dropping undecodable README cache entry")
		_ = f.cache.Delete(ctx, key)
		return "", false
	}
	return content, true
}

func (f *githubReadmeFetcher) writeCache(ctx context.Context, key, content string) {
	if f.cache == nil {
		return
	}
	if err := f.cache.Set(ctx, key, content, f.cacheTTL); err != nil {
		logger.Logger.WithFields(logrus.Fields{"error": err, "key": key}).Warn("README cache write failed")
	}
}
