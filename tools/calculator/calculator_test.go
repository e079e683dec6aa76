package calculator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTool_Call(t *testing.T) {
	tool := New()
	ctx := context.Background()

	tests := []struct {
		name       string
		expression string
		expected   string
	}{
		{name: "addition", expression: "2 + 2", expected: "4"},
		{name: "exponent caret", expression: "2^10", expected: "1024"},
		{name: "exponent double star", expression: "2**10", expected: "1024"},
		{name: "trigonometry", expression: "sin(0)", expected: "0"},
		{name: "cosine", expression: "cos(0)", expected: "1"},
		{name: "square root", expression: "sqrt(16)", expected: "4"},
		{name: "division", expression: "7 / 2", expected: "3.5"},
		{name: "precedence", expression: "2 + 3 * 4", expected: "14"},
		{name: "parentheses", expression: "(2 + 3) * 4", expected: "20"},
		{name: "negative", expression: "1 - 5", expected: "-4"},
		{name: "pow function", expression: "pow(2, 8)", expected: "256"},
		{name: "float argument", expression: "sqrt(2.25)", expected: "1.5"},
		{name: "function result in arithmetic", expression: "sin(0) + 1", expected: "1"},
		{name: "nested functions", expression: "sqrt(pow(3, 2))", expected: "3"},
		{name: "constant argument", expression: "cos(pi)", expected: "-1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := tool.Call(ctx, Input{Expression: tc.expression})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, output.Result)
		})
	}
}

func TestTool_CallMalformedExpression(t *testing.T) {
	tool := New()
	ctx := context.Background()

	for _, expression := range []string{"2 + ", "(((", "hello world", ""} {
		t.Run(expression, func(t *testing.T) {
			_, err := tool.Call(ctx, Input{Expression: expression})
			assert.Error(t, err, "expression %q must fail, not return a sentinel", expression)
		})
	}
}

func TestTool_CallFunctionsAcceptIntegerLiterals(t *testing.T) {
	// Integer literals must coerce to float64 on the way into the math
	// functions; expr passes arguments with their literal types.
	tool := New()
	ctx := context.Background()

	for expression, expected := range map[string]string{
		"sin(0)":    "0",
		"cos(0)":    "1",
		"sqrt(16)":  "4",
		"pow(2, 8)": "256",
		"exp(0)":    "1",
	} {
		output, err := tool.Call(ctx, Input{Expression: expression})
		require.NoError(t, err, "expression %q", expression)
		assert.Equal(t, expected, output.Result, "expression %q", expression)
	}
}

func TestTool_CallFunctionArityAndTypes(t *testing.T) {
	tool := New()
	ctx := context.Background()

	for _, expression := range []string{
		"sin()",
		"sin(1, 2)",
		"pow(2)",
		"sqrt(1 == 1)",
	} {
		t.Run(expression, func(t *testing.T) {
			_, err := tool.Call(ctx, Input{Expression: expression})
			assert.Error(t, err)
		})
	}
}

func TestTool_CallNonNumericResult(t *testing.T) {
	tool := New()

	_, err := tool.Call(context.Background(), Input{Expression: "1 == 1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not evaluate to a number")
}

func TestTool_Stateless(t *testing.T) {
	tool := New()
	ctx := context.Background()

	first, err := tool.Call(ctx, Input{Expression: "2 + 2"})
	require.NoError(t, err)

	// A failing call in between must not disturb later results.
	_, err = tool.Call(ctx, Input{Expression: "2 + "})
	require.Error(t, err)

	second, err := tool.Call(ctx, Input{Expression: "10 * 10"})
	require.NoError(t, err)

	assert.Equal(t, "4", first.Result)
	assert.Equal(t, "100", second.Result)

	again, err := tool.Call(ctx, Input{Expression: "2 + 2"})
	require.NoError(t, err)
	assert.Equal(t, first.Result, again.Result)
}

func TestTool_Metadata(t *testing.T) {
	tool := New()

	assert.Equal(t, "calculator", tool.Name())
	assert.Contains(t, tool.Description(), "calculations")
	require.NotNil(t, tool.ParameterSchema())
}

func TestInputSchema_Validate(t *testing.T) {
	assert.NoError(t, InputSchema.Validate(map[string]any{"expression": "2 + 2"}))
	assert.Error(t, InputSchema.Validate(map[string]any{}), "expression is required")
	assert.Error(t, InputSchema.Validate(map[string]any{"expression": 42}),
		"expression must be a string")
}
