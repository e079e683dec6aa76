// Package schema provides JSON Schema building and validation utilities.
//
// # Quick Start
//
//	var inputSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "expression": schema.String("Mathematical expression to evaluate."),
//	}, "expression"))
//
//	if err := inputSchema.Validate(args); err != nil {
//	    return err
//	}
//
// Tools expose their raw schema map through ParameterSchema; callers that
// receive untyped arguments validate them here before decoding.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema represents a JSON Schema definition. It provides both the raw map
// representation (for serialization and prompts) and a compiled validator
// (for runtime validation).
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map[string]any representation.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates the given data against the schema.
// Returns nil if valid, or a [ValidationError] describing the failure.
func (s *Schema) Validate(data map[string]any) error {
	if s == nil || s.compiled == nil {
		return nil
	}
	if err := s.compiled.Validate(data); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation error with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map into a Schema with a compiled validator.
// Returns an error if the schema is invalid.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	schemaData, err := jsonschema.UnmarshalJSON(strings.NewReader(string(schemaJSON)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{
		raw:      raw,
		compiled: compiled,
	}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Schema Builders
// -----------------------------------------------------------------------------

// Object creates an object schema with the given properties.
// Pass property names as variadic arguments to mark them as required.
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	m := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		m["required"] = required
	}
	return m
}

// Property represents a property in an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	def         any
}

func (p *Property) build() map[string]any {
	m := map[string]any{}
	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.def != nil {
		m["default"] = p.def
	}
	return m
}

// String creates a string property.
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Number creates a number property (floating point).
func Number(description string) *Property {
	return &Property{typ: "number", description: description}
}

// Boolean creates a boolean property.
func Boolean(description string) *Property {
	return &Property{typ: "boolean", description: description}
}

// Enum sets allowed values for the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Default sets the default value for the property.
func (p *Property) Default(value any) *Property {
	p.def = value
	return p
}
