package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

// stubLLM implements llms.Model returning a canned response.
type stubLLM struct {
	response *llms.ContentResponse
	err      error
}

func (s *stubLLM) GenerateContent(
	_ context.Context,
	_ []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	return s.response, s.err
}

func (s *stubLLM) Call(
	_ context.Context,
	_ string,
	_ ...llms.CallOption,
) (string, error) {
	return "", errors.New("not implemented")
}

func TestLCGWrapper_GenerateContent(t *testing.T) {
	llm := &stubLLM{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{
				Content:    "Hello!",
				StopReason: "stop",
				GenerationInfo: map[string]any{
					"PromptTokens":     17,
					"CompletionTokens": 5,
					"TotalTokens":      22,
				},
			}},
		},
	}

	model := NewLCGWrapper(llm).WithModelName("llama3-70b-8192")
	assert.Equal(t, "llama3-70b-8192", model.ModelName())

	response, err := model.GenerateContent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Hello!", response.Content)
	assert.Equal(t, "stop", response.StopReason)
	assert.Equal(t, 17, response.Info.InputTokens)
	assert.Equal(t, 5, response.Info.OutputTokens)
	assert.Equal(t, 22, response.Info.TotalTokens)
}

func TestLCGWrapper_NormalizesAlternateKeys(t *testing.T) {
	llm := &stubLLM{
		response: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{
				Content: "ok",
				GenerationInfo: map[string]any{
					"input_tokens":  float64(10),
					"output_tokens": float64(3),
				},
			}},
		},
	}

	response, err := NewLCGWrapper(llm).GenerateContent(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 10, response.Info.InputTokens)
	assert.Equal(t, 3, response.Info.OutputTokens)
	assert.Equal(t, 13, response.Info.TotalTokens, "total computed when not reported")
}

func TestLCGWrapper_EmptyChoices(t *testing.T) {
	llm := &stubLLM{response: &llms.ContentResponse{}}

	response, err := NewLCGWrapper(llm).GenerateContent(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, response.Content)
	require.NotNil(t, response.Info)
}

func TestLCGWrapper_ErrorPropagates(t *testing.T) {
	llmErr := errors.New("rate limited")
	llm := &stubLLM{err: llmErr}

	_, err := NewLCGWrapper(llm).GenerateContent(context.Background(), nil)
	assert.ErrorIs(t, err, llmErr)
}

func TestLCGWrapper_Unwrap(t *testing.T) {
	llm := &stubLLM{}
	assert.Same(t, llm, NewLCGWrapper(llm).Unwrap())
}
