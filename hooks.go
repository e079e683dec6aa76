package agentlet

import (
	"context"
	"time"

	"github.com/tmc/langchaingo/llms"
)

// -----------------------------------------------------------------------------
// Agent Hook Interfaces
// -----------------------------------------------------------------------------
//
// Hooks allow observing agent runs for logging and metrics. To use hooks:
//
//  1. Implement the desired hook interface(s)
//  2. Register with hooks.Registry
//  3. Pass the registry in agentlet.Config
//
// Example:
//
//	type LoggingHook struct {
//	    logger *log.Logger
//	}
//
//	func (h *LoggingHook) OnAfterModelCall(ctx context.Context, e agentlet.AfterModelCallEvent) {
//	    h.logger.Printf("model call took %v", e.Duration)
//	}
//
//	registry := hooks.NewRegistry()
//	registry.Register(&LoggingHook{logger: log.Default()})
//
// Hooks are called in registration order. The After hook is always called if
// the Before hook was called, even when the model call fails. Hooks must not
// return errors; a panicking hook aborts the run.
// -----------------------------------------------------------------------------

// BeforeModelCallEvent is fired immediately before the model is called.
type BeforeModelCallEvent struct {
	// Request is the full message list about to be sent to the model.
	Request []llms.MessageContent
}

// AfterModelCallEvent is fired after the model call returns.
type AfterModelCallEvent struct {
	// Request is the message list that was sent.
	Request []llms.MessageContent

	// Response is the model's response. Nil when Error is set.
	Response *ContentResponse

	// Duration is how long the call took.
	Duration time.Duration

	// Error is the model call error, if any.
	Error error
}

// ErrorEvent is fired when an agent run fails.
type ErrorEvent struct {
	// Err is the failure that ended the run.
	Err error
}

// BeforeModelCallHook is implemented by hooks that want to observe requests
// before they reach the model.
type BeforeModelCallHook interface {
	OnBeforeModelCall(ctx context.Context, event BeforeModelCallEvent)
}

// AfterModelCallHook is implemented by hooks that want to observe responses,
// durations, and model errors.
type AfterModelCallHook interface {
	OnAfterModelCall(ctx context.Context, event AfterModelCallEvent)
}

// ErrorHook is implemented by hooks that want to observe run failures.
type ErrorHook interface {
	OnError(ctx context.Context, event ErrorEvent)
}

// HookDispatcher dispatches hook events. The hooks subpackage provides the
// standard implementation; Agent treats a nil dispatcher as "no hooks".
type HookDispatcher interface {
	FireBeforeModelCall(ctx context.Context, event BeforeModelCallEvent)
	FireAfterModelCall(ctx context.Context, event AfterModelCallEvent)
	FireError(ctx context.Context, event ErrorEvent)
}
