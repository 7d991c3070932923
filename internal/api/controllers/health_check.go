package controllers

import (
	"context"
	"github-summarizer-api/internal/pkg/response"
	"net/http"
	"time"
)

const externalServiceTimeout = 2 * time.Second

type HealthCheckResponse struct {
	Status           string            `json:"status"`
	Database         string            `json:"database"`
	ExternalServices map[string]string `json:"external_services"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthCheckHandler checks API health, database connection, and the GitHub API
func HealthCheckHandler(db Pinger, githubAPIURL string, client *http.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := HealthCheckResponse{
			Status:           "API is running",
			ExternalServices: make(map[string]string),
		}

		if err := db.PingContext(r.Context()); err != nil {
			health.Database = "Database connection failed"
			respondWithJSON(w, http.StatusInternalServerError, health)
			return
		}
		health.Database = "Database connection is healthy"

		health.ExternalServices["GitHub API"] = checkExternalService(r.Context(), client, githubAPIURL)

		respondWithJSON(w, http.StatusOK, health)
	}
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response.JSON(w, code, payload)
}

// checkExternalService checks the status of an external service
func checkExternalService(ctx context.Context, client *http.Client, url string) string {
	ctx, cancel := context.WithTimeout(ctx, externalServiceTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "Unreachable"
	}

	resp, err := client.Do(req)
	if err != nil {
		return "Unreachable"
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return "Available"
	}
	return "Unavailable"
}
