// Package calculator provides a tool that evaluates arithmetic expressions.
//
// The tool delegates parsing and evaluation to expr-lang. Beyond the basic
// arithmetic operators it exposes a small math environment (sin, cos, tan,
// sqrt, log, exp, pow) and the constants pi and e. Exponentiation is written
// as either ^ or **.
//
// Malformed expressions fail with the evaluator's own error; the tool never
// substitutes a sentinel result. No bounds are placed on expression
// complexity or evaluation time.
package calculator

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/expr-lang/expr"

	"github.com/agentlet/agentlet"
	"github.com/agentlet/agentlet/schema"
)

// ToolName is the identifier the tool reports through Name.
const ToolName = "calculator"

const toolDescription = "Tool for performing calculations. Supports basic " +
	"arithmetic operations like addition, subtraction, multiplication, and " +
	"division, but also more complex operations like exponentiation and " +
	"trigonometric functions. Use this tool to evaluate mathematical expressions."

// Input carries the expression to evaluate.
type Input struct {
	// Expression is a free-text mathematical expression, e.g. "2 + 2".
	Expression string `json:"expression"`
}

// Output carries the stringified result of the evaluation.
type Output struct {
	// Result is the computed value in canonical numeric-string form.
	Result string `json:"result"`
}

// InputSchema validates raw argument maps before they are decoded into
// [Input].
var InputSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"expression": schema.String(
		"Mathematical expression to evaluate. For example, '2 + 2'."),
}, "expression"))

// mathEnv is the evaluation environment shared by every call. It holds only
// functions and constants, never results, so calls cannot leak state into
// each other. Functions are wrapped so integer arguments coerce to float64;
// expr invokes env functions with the literal argument types, and "sin(0)"
// must work as well as "sin(0.0)".
var mathEnv = map[string]any{
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"sqrt":  unary("sqrt", math.Sqrt),
	"log":   unary("log", math.Log),
	"log10": unary("log10", math.Log10),
	"exp":   unary("exp", math.Exp),
	"pow":   binary("pow", math.Pow),
	"pi":    math.Pi,
	"e":     math.E,
}

// unary wraps a float64 math function so any numeric argument is accepted.
func unary(name string, fn func(float64) float64) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s expects 1 argument, got %d", name, len(args))
		}
		x, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		return fn(x), nil
	}
}

// binary wraps a two-argument float64 math function the same way.
func binary(name string, fn func(x, y float64) float64) func(args ...any) (any, error) {
	return func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s expects 2 arguments, got %d", name, len(args))
		}
		x, err := toFloat(name, args[0])
		if err != nil {
			return nil, err
		}
		y, err := toFloat(name, args[1])
		if err != nil {
			return nil, err
		}
		return fn(x, y), nil
	}
}

// toFloat coerces any numeric evaluation value to float64.
func toFloat(name string, v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%s expects a numeric argument (got %T)", name, v)
	}
}

// Tool evaluates arithmetic expressions. It is stateless across calls;
// construct once and reuse freely.
type Tool struct{}

// New creates a calculator Tool.
func New() *Tool {
	return &Tool{}
}

// Name returns the tool's identifier.
func (t *Tool) Name() string {
	return ToolName
}

// Description returns a human-readable description for the LLM.
func (t *Tool) Description() string {
	return toolDescription
}

// ParameterSchema returns the JSON Schema for the tool's input.
func (t *Tool) ParameterSchema() map[string]any {
	return InputSchema.Raw()
}

// Call parses and evaluates the input expression and returns the result as
// a string. Parse and evaluation errors from the expression engine propagate
// to the caller unchanged in meaning.
func (t *Tool) Call(_ context.Context, input Input) (Output, error) {
	value, err := expr.Eval(input.Expression, mathEnv)
	if err != nil {
		return Output{}, fmt.Errorf("failed to evaluate %q: %w", input.Expression, err)
	}

	result, err := formatNumber(value)
	if err != nil {
		return Output{}, fmt.Errorf("failed to evaluate %q: %w", input.Expression, err)
	}
	return Output{Result: result}, nil
}

// formatNumber renders an evaluation result in canonical numeric-string
// form: integers in base 10, floats with the shortest representation that
// round-trips.
func formatNumber(value any) (string, error) {
	switch n := value.(type) {
	case int:
		return strconv.Itoa(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("expression did not evaluate to a number (got %T)", value)
	}
}

// Compile-time check that Tool implements agentlet.Tool.
var _ agentlet.Tool[Input, Output] = (*Tool)(nil)
