package models

import (
	"fmt"
	"strings"
)

// CoolFactCount is the number of facts the model is asked to return.
const CoolFactCount = 2

type SummaryResult struct {
	Summary   string   `json:"summary"`
	CoolFacts []string `json:"cool_facts"`
}

// Validate rejects model output that does not match the requested shape.
func (s *SummaryResult) Validate() error {
	if strings.TrimSpace(s.Summary) == "" {
		return fmt.Errorf("summary is empty")
	}
	if len(s.CoolFacts) != CoolFactCount {
		return fmt.Errorf("expected %d cool facts, got %d", CoolFactCount, len(s.CoolFacts))
	}
	for i, fact := range s.CoolFacts {
		if strings.TrimSpace(fact) == "" {
			return fmt.Errorf("cool fact %d is empty", i)
		}
	}
	return nil
}

type RepositorySummary struct {
	Repository  string   `json:"repository"`
	Description string   `json:"description"`
	CoolFacts   []string `json:"cool_facts"`
}

type SummaryResponse struct {
	Success bool              `json:"success"`
	Summary RepositorySummary `json:"summary"`
}

func NewSummaryResponse(repositoryURL string, result *SummaryResult) SummaryResponse {
	return SummaryResponse{
		Success: true,
		Summary: RepositorySummary{
			Repository:  repositoryURL,
			Description: result.Summary,
			CoolFacts:   result.CoolFacts,
		},
	}
}
