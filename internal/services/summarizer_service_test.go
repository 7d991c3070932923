package services

import (
	"context"
	stderrors "errors"
	"github-summarizer-api/internal/llm"
	"github-summarizer-api/internal/pkg/errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func toolCallResponse(name, arguments string) *llm.ChatResponse {
	return &llm.ChatResponse{Choices: []llm.Choice{{
		Message: llm.ResponseMessage{
			Role: "assistant",
			ToolCalls: []llm.ToolCall{{
				ID:       "call_1",
				Type:     "function",
				Function: llm.FunctionCall{Name: name, Arguments: arguments},
			}},
		},
		FinishReason: "stop",
	}}}
}

func TestBuildSummaryPrompt(t *testing.T) {
	prompt := BuildSummaryPrompt("# Title\n100% coverage")
	assert.Contains(t, prompt, "Analyze the following GitHub repository README content and provide a summary and interesting facts about it.")
	assert.Contains(t, prompt, "README Content: # Title\n100% coverage")
}

func TestSummarizeReadme_Success(t *testing.T) {
	client := new(MockChatCompleter)
	svc := NewSummarizerService(client, "gpt-3.5-turbo")

	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req llm.ChatRequest) bool {
		return req.Model == "gpt-3.5-turbo" &&
			req.Temperature == 0 &&
			len(req.Messages) == 1 &&
			strings.Contains(req.Messages[0].Content, "README Content: hello world") &&
			len(req.Tools) == 1 &&
			req.Tools[0].Function.Name == summaryFunctionName &&
			req.ToolChoice != nil &&
			req.ToolChoice.Function.Name == summaryFunctionName
	})).Return(toolCallResponse(summaryFunctionName, `{"summary":"A greeting","cool_facts":["short","friendly"]}`), nil)

	result, err := svc.SummarizeReadme(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, "A greeting", result.Summary)
	assert.Equal(t, []string{"short", "friendly"}, result.CoolFacts)
	client.AssertExpectations(t)
}

func TestSummarizeReadme_Failures(t *testing.T) {
	tests := []struct {
		name string
		resp *llm.ChatResponse
		err  error
	}{
		{name: "provider error", err: &llm.APIError{StatusCode: 429, Body: "rate limited"}},
		{name: "no choices", resp: &llm.ChatResponse{}},
		{name: "no tool call", resp: toolCallResponse("other_function", `{}`)},
		{name: "invalid json", resp: toolCallResponse(summaryFunctionName, `{"summary":`)},
		{name: "three facts", resp: toolCallResponse(summaryFunctionName, `{"summary":"s","cool_facts":["a","b","c"]}`)},
		{name: "missing summary", resp: toolCallResponse(summaryFunctionName, `{"cool_facts":["a","b"]}`)},
		{name: "transport error", err: stderrors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(MockChatCompleter)
			svc := NewSummarizerService(client, "gpt-3.5-turbo")
			if tt.err != nil {
				client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(tt.resp, nil)
			}

			result, err := svc.SummarizeReadme(context.Background(), "content")
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, errors.ErrSummarizationFailed), "got %v", err)
			client.AssertNumberOfCalls(t, "CreateChatCompletion", 1)
		})
	}
}
