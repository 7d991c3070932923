package services

import (
	"context"
	"encoding/json"
	"fmt"
	"github-summarizer-api/internal/llm"
	"github-summarizer-api/internal/logger"
	"github-summarizer-api/internal/models"
	"github-summarizer-api/internal/pkg/errors"

	"github.com/sirupsen/logrus"
)

const (
	summaryPromptTemplate = `
Analyze the following GitHub repository README content and provide a summary and interesting facts about it.
README Content: %s
`
	summaryFunctionName = "repository_summary"
)

// summarySchema is the JSON schema the model is forced to answer with.
var summarySchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"summary": map[string]interface{}{
			"type":        "string",
			"description": "A concise summary of the GitHub repository",
		},
		"cool_facts": map[string]interface{}{
			"type":        "array",
			"description": "A list of 2 interesting facts about the repository",
			"items":       map[string]interface{}{"type": "string"},
			"minItems":    models.CoolFactCount,
			"maxItems":    models.CoolFactCount,
		},
	},
	"required":             []string{"summary", "cool_facts"},
	"additionalProperties": false,
}

// ChatCompleter is satisfied by *llm.Client.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error)
}

type SummarizerService interface {
	SummarizeReadme(ctx context.Context, readmeContent string) (*models.SummaryResult, error)
}

type summarizerService struct {
	client ChatCompleter
	model  string
}

func NewSummarizerService(client ChatCompleter, model string) SummarizerService {
	return &summarizerService{
		client: client,
		model:  model,
	}
}

func BuildSummaryPrompt(readmeContent string) string {
	return fmt.Sprintf(summaryPromptTemplate, readmeContent)
}

func (s *summarizerService) SummarizeReadme(ctx context.Context, readmeContent string) (*models.SummaryResult, error) {
	result, err := s.summarize(ctx, readmeContent)
	if err != nil {
		logger.Logger.WithFields(logrus.Fields{
			"error": err,
			"model": s.model,
		}).Error("Error summarizing README")
		return nil, errors.WrapKind(errors.ErrSummarizationFailed, err, "failed to summarize README")
	}
	return result, nil
}

func (s *summarizerService) summarize(ctx context.Context, readmeContent string) (*models.SummaryResult, error) {
	resp, err := s.client.CreateChatCompletion(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.ChatMessage{
			{Role: "user", Content: BuildSummaryPrompt(readmeContent)},
		},
		Temperature: 0,
		Tools: []llm.Tool{{
			Type: "function",
			Function: llm.FunctionDefinition{
				Name:        summaryFunctionName,
				Description: "Summary and interesting facts about a GitHub repository",
				Parameters:  summarySchema,
			},
		}},
		ToolChoice: &llm.ToolChoice{
			Type:     "function",
			Function: llm.ToolChoiceFunction{Name: summaryFunctionName},
		},
	})
	if err != nil {
		return nil, err
	}

	return parseSummaryResponse(resp)
}

func parseSummaryResponse(resp *llm.ChatResponse) (*models.SummaryResult, error) {
	if resp == nil || len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	for _, call := range resp.Choices[0].Message.ToolCalls {
		if call.Function.Name != summaryFunctionName {
			continue
		}

		var result models.SummaryResult
		if err := json.Unmarshal([]byte(call.Function.Arguments), &result); err != nil {
			return nil, fmt.Errorf("invalid structured output: %w", err)
		}
		if err := result.Validate(); err != nil {
			return nil, fmt.Errorf("structured output does not match schema: %w", err)
		}
		return &result, nil
	}

	return nil, fmt.Errorf("model did not call %s", summaryFunctionName)
}
