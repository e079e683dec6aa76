package agentlet

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// Model is agentlet's model interface. It wraps LangChainGo's llms.Model but
// returns a response with token usage normalized across providers.
//
// Implementations are expected to be blocking and synchronous; cancellation
// and deadlines flow through the context.
type Model interface {
	// GenerateContent generates a completion for the given messages.
	GenerateContent(
		ctx context.Context,
		messages []llms.MessageContent,
		options ...llms.CallOption,
	) (*ContentResponse, error)
}

// ContentResponse is the response from a GenerateContent call.
type ContentResponse struct {
	// Content is the textual content of the first choice.
	Content string

	// StopReason is the reason the model stopped generating.
	StopReason string

	// Info contains generation metadata including normalized token counts.
	Info *GenerationInfo
}

// GenerationInfo contains metadata about a generation.
type GenerationInfo struct {
	// InputTokens is the number of input/prompt tokens used.
	InputTokens int

	// OutputTokens is the number of output/completion tokens generated.
	OutputTokens int

	// TotalTokens is InputTokens + OutputTokens unless the provider reports
	// its own total.
	TotalTokens int

	// Duration is how long the generation took.
	Duration time.Duration
}
