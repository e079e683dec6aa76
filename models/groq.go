package models

import (
	"errors"

	"github.com/tmc/langchaingo/llms/openai"
)

// GroqBaseURL is the base URL for Groq's OpenAI-compatible API.
// The chat completions endpoint is at {baseURL}/chat/completions.
const GroqBaseURL = "https://api.groq.com/openai/v1"

// ErrMissingAPIKey is returned when a model constructor is given an empty
// API key.
var ErrMissingAPIKey = errors.New(
	"API key is not set. Please set the API key explicitly or in an environment variable")

// NewGroqModel creates a Model backed by Groq's OpenAI-compatible API.
//
// Model names are Groq model identifiers, for example:
//
//	"llama3-70b-8192"
//	"llama-3.1-8b-instant"
//
// Additional openai.Option values can be passed to customise the underlying
// LangChainGo OpenAI client (e.g. WithHTTPClient).
//
// Example:
//
//	model, err := models.NewGroqModel(
//	    "llama3-70b-8192",
//	    os.Getenv("GROQ_API_KEY"),
//	)
func NewGroqModel(
	model string,
	apiKey string,
	opts ...openai.Option,
) (*LCGWrapper, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Base options point at the Groq endpoint. Caller options come after so
	// they can override defaults.
	baseOpts := []openai.Option{
		openai.WithBaseURL(GroqBaseURL),
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	allOpts := append(baseOpts, opts...)

	llm, err := openai.New(allOpts...)
	if err != nil {
		return nil, err
	}

	return NewLCGWrapper(llm).WithModelName(model), nil
}
