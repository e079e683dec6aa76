// Package models provides Model implementations backed by LangChainGo.
package models

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/agentlet/agentlet"
)

// LCGWrapper wraps an llms.Model and implements agentlet's Model interface,
// normalizing token usage across providers.
//
// Example usage:
//
//	llm, _ := openai.New(openai.WithToken(apiKey))
//	model := models.NewLCGWrapper(llm).WithModelName("gpt-4o-mini")
type LCGWrapper struct {
	model     llms.Model
	modelName string
}

// NewLCGWrapper creates a new LCGWrapper wrapping the given llms.Model.
func NewLCGWrapper(model llms.Model) *LCGWrapper {
	return &LCGWrapper{
		model: model,
	}
}

// WithModelName sets the model name reported by ModelName.
// Returns the model for chaining.
func (m *LCGWrapper) WithModelName(name string) *LCGWrapper {
	m.modelName = name
	return m
}

// ModelName returns the configured model name, if any.
func (m *LCGWrapper) ModelName() string {
	return m.modelName
}

// Unwrap returns the underlying llms.Model.
func (m *LCGWrapper) Unwrap() llms.Model {
	return m.model
}

// GenerateContent implements agentlet.Model. Token usage is normalized across
// providers.
func (m *LCGWrapper) GenerateContent(
	ctx context.Context,
	messages []llms.MessageContent,
	options ...llms.CallOption,
) (*agentlet.ContentResponse, error) {
	start := time.Now()
	lcgResponse, err := m.model.GenerateContent(ctx, messages, options...)
	if err != nil {
		return nil, err
	}
	return convertLCGResponse(lcgResponse, time.Since(start)), nil
}

// convertLCGResponse converts an llms.ContentResponse into an
// agentlet.ContentResponse with normalized token counts.
func convertLCGResponse(
	lcgResponse *llms.ContentResponse,
	duration time.Duration,
) *agentlet.ContentResponse {
	response := &agentlet.ContentResponse{
		Info: &agentlet.GenerationInfo{Duration: duration},
	}
	if len(lcgResponse.Choices) == 0 {
		return response
	}

	choice := lcgResponse.Choices[0]
	response.Content = choice.Content
	response.StopReason = choice.StopReason

	if choice.GenerationInfo != nil {
		info := choice.GenerationInfo
		response.Info.InputTokens = extractInt(info,
			"PromptTokens", "prompt_tokens", "InputTokens", "input_tokens")
		response.Info.OutputTokens = extractInt(info,
			"CompletionTokens", "completion_tokens", "OutputTokens", "output_tokens")
		response.Info.TotalTokens = extractInt(info,
			"TotalTokens", "total_tokens")
		if response.Info.TotalTokens == 0 {
			response.Info.TotalTokens =
				response.Info.InputTokens + response.Info.OutputTokens
		}
	}

	return response
}

// extractInt returns the first of the given keys present in info, coerced to
// int. Providers disagree on both key naming and numeric type.
func extractInt(info map[string]any, keys ...string) int {
	for _, key := range keys {
		v, ok := info[key]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}

// Compile-time check that LCGWrapper implements agentlet.Model.
var _ agentlet.Model = (*LCGWrapper)(nil)
