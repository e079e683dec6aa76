package agentlet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// ErrNoModel is returned by NewAgent when the config has no model.
var ErrNoModel = errors.New("agentlet: config requires a Model")

// Input is the agent's input shape: a single user chat message.
type Input struct {
	ChatMessage string `json:"chat_message"`
}

// Output is the agent's output shape: the assistant's reply.
type Output struct {
	ChatMessage string `json:"chat_message"`
}

// Config configures an [Agent].
type Config struct {
	// Model is the language model the agent talks to. Required.
	Model Model

	// Memory is the conversation history. Defaults to an empty [Memory].
	Memory *Memory

	// SystemPromptGenerator builds the system prompt sent ahead of the
	// conversation. Defaults to a generator with a minimal background.
	SystemPromptGenerator *SystemPromptGenerator

	// Hooks receives model-call and error events. Optional.
	Hooks HookDispatcher

	// CallOptions are passed through to every model call (temperature,
	// max tokens, etc.).
	CallOptions []llms.CallOption
}

// defaultPromptInfo is used when no generator is configured.
var defaultPromptInfo = PromptInfo{
	Background: []string{"This assistant is a helpful general-purpose AI."},
}

// Agent is a synchronous chat agent: a facade over a [Model], a [Memory],
// and a [SystemPromptGenerator].
//
// Each Run sends the generated system prompt, the full history, and the new
// user turn to the model, then records both the user turn and the assistant
// reply in memory. There are no retries; model failures propagate to the
// caller. Agent is not safe for concurrent use.
type Agent struct {
	model       Model
	memory      *Memory
	generator   *SystemPromptGenerator
	hooks       HookDispatcher
	callOptions []llms.CallOption
}

// NewAgent creates an Agent from the given config. Missing optional fields
// get defaults; a missing model is an error.
func NewAgent(config Config) (*Agent, error) {
	if config.Model == nil {
		return nil, ErrNoModel
	}
	memory := config.Memory
	if memory == nil {
		memory = NewMemory()
	}
	generator := config.SystemPromptGenerator
	if generator == nil {
		generator = NewSystemPromptGenerator(defaultPromptInfo)
	}
	return &Agent{
		model:       config.Model,
		memory:      memory,
		generator:   generator,
		hooks:       config.Hooks,
		callOptions: config.CallOptions,
	}, nil
}

// Memory returns the agent's conversation memory.
func (a *Agent) Memory() *Memory {
	return a.memory
}

// SystemPromptGenerator returns the agent's prompt generator.
func (a *Agent) SystemPromptGenerator() *SystemPromptGenerator {
	return a.generator
}

// Run sends one user turn through the agent and returns the assistant reply.
//
// The user turn is recorded in memory before the model call, so a failed call
// leaves the user's message in the history; the assistant turn is only
// recorded on success.
func (a *Agent) Run(ctx context.Context, input Input) (Output, error) {
	prompt, err := a.generator.Generate()
	if err != nil {
		a.fireError(ctx, err)
		return Output{}, err
	}

	a.memory.Add(RoleUser, input.ChatMessage)

	messages := make([]llms.MessageContent, 0, a.memory.Len()+1)
	messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, prompt))
	messages = append(messages, a.memory.History()...)

	if a.hooks != nil {
		a.hooks.FireBeforeModelCall(ctx, BeforeModelCallEvent{Request: messages})
	}

	start := time.Now()
	response, err := a.model.GenerateContent(ctx, messages, a.callOptions...)
	duration := time.Since(start)

	if a.hooks != nil {
		a.hooks.FireAfterModelCall(ctx, AfterModelCallEvent{
			Request:  messages,
			Response: response,
			Duration: duration,
			Error:    err,
		})
	}
	if err != nil {
		a.fireError(ctx, err)
		return Output{}, fmt.Errorf("model call failed: %w", err)
	}

	a.memory.Add(RoleAssistant, response.Content)
	return Output{ChatMessage: response.Content}, nil
}

func (a *Agent) fireError(ctx context.Context, err error) {
	if a.hooks != nil {
		a.hooks.FireError(ctx, ErrorEvent{Err: err})
	}
}
