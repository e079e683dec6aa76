// Package hooks provides the standard hook registry for agentlet agents.
//
// A Registry stores hooks in registration order and dispatches agent events
// to every hook that implements the relevant interface. A single hook can
// implement any combination of [agentlet.BeforeModelCallHook],
// [agentlet.AfterModelCallHook], and [agentlet.ErrorHook]; it only receives
// events for the interfaces it implements.
//
//	registry := hooks.NewRegistry()
//	registry.Register(&LoggingHook{})
//	registry.Register(&MetricsHook{})
//
//	agent, err := agentlet.NewAgent(agentlet.Config{
//	    Model: model,
//	    Hooks: registry,
//	})
//
// Registry is NOT thread-safe. Register all hooks before running the agent.
package hooks

import (
	"context"

	"github.com/agentlet/agentlet"
)

// Registry manages a collection of hooks and dispatches events to them.
type Registry struct {
	hooks []any
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		hooks: make([]any, 0),
	}
}

// Register adds a hook to the registry. Hooks are called in the order they
// are registered. Returns self for chaining.
func (r *Registry) Register(hook any) *Registry {
	r.hooks = append(r.hooks, hook)
	return r
}

// FireBeforeModelCall dispatches the event to all registered
// BeforeModelCallHook implementations.
func (r *Registry) FireBeforeModelCall(
	ctx context.Context,
	event agentlet.BeforeModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(agentlet.BeforeModelCallHook); ok {
			hook.OnBeforeModelCall(ctx, event)
		}
	}
}

// FireAfterModelCall dispatches the event to all registered
// AfterModelCallHook implementations.
func (r *Registry) FireAfterModelCall(
	ctx context.Context,
	event agentlet.AfterModelCallEvent,
) {
	for _, h := range r.hooks {
		if hook, ok := h.(agentlet.AfterModelCallHook); ok {
			hook.OnAfterModelCall(ctx, event)
		}
	}
}

// FireError dispatches the event to all registered ErrorHook implementations.
func (r *Registry) FireError(ctx context.Context, event agentlet.ErrorEvent) {
	for _, h := range r.hooks {
		if hook, ok := h.(agentlet.ErrorHook); ok {
			hook.OnError(ctx, event)
		}
	}
}

// Compile-time check that Registry implements agentlet.HookDispatcher.
var _ agentlet.HookDispatcher = (*Registry)(nil)
