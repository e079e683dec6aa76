package agentlet

import (
	"context"
)

// Tool represents a single callable tool with typed input and output.
// The generic parameters give compile-time type safety when implementing and
// invoking tools.
//
// Tools must be stateless across calls: Call may be invoked any number of
// times, with any inputs, without earlier calls influencing later results.
// Evaluation errors are returned to the caller untouched; tools do not
// substitute sentinel outputs for failures.
type Tool[I, O any] interface {
	// Name returns the tool's identifier.
	Name() string

	// Description returns a human-readable description for the LLM.
	Description() string

	// ParameterSchema returns the JSON Schema for the tool's input.
	// Returns nil if the tool takes no parameters.
	ParameterSchema() map[string]any

	// Call executes the tool with the given typed input.
	Call(ctx context.Context, input I) (O, error)
}

// ToolFunc is a convenience type for creating tools from functions with
// typed input and output.
type ToolFunc[I, O any] struct {
	name        string
	description string
	schema      map[string]any
	fn          func(ctx context.Context, input I) (O, error)
}

// NewToolFunc creates a new ToolFunc with typed input and output.
func NewToolFunc[I, O any](
	name, description string,
	schema map[string]any,
	fn func(ctx context.Context, input I) (O, error),
) *ToolFunc[I, O] {
	return &ToolFunc[I, O]{
		name:        name,
		description: description,
		schema:      schema,
		fn:          fn,
	}
}

// Name returns the tool's identifier.
func (t *ToolFunc[I, O]) Name() string {
	return t.name
}

// Description returns a human-readable description for the LLM.
func (t *ToolFunc[I, O]) Description() string {
	return t.description
}

// ParameterSchema returns the JSON Schema for the tool's input.
func (t *ToolFunc[I, O]) ParameterSchema() map[string]any {
	return t.schema
}

// Call executes the tool function with the given typed input.
func (t *ToolFunc[I, O]) Call(ctx context.Context, input I) (O, error) {
	return t.fn(ctx, input)
}
