package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	raw := Object(map[string]*Property{
		"expression": String("Mathematical expression to evaluate."),
		"precision":  Number("Digits of precision.").Default(2),
		"exact":      Boolean("Return exact results."),
		"mode":       String("Evaluation mode.").Enum("fast", "safe"),
	}, "expression")

	assert.Equal(t, "object", raw["type"])
	assert.Equal(t, []string{"expression"}, raw["required"])

	props, ok := raw["properties"].(map[string]any)
	require.True(t, ok)
	expression, ok := props["expression"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", expression["type"])
	assert.Equal(t, "Mathematical expression to evaluate.", expression["description"])

	precision, ok := props["precision"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 2, precision["default"])

	mode, ok := props["mode"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"fast", "safe"}, mode["enum"])
}

func TestCompileAndValidate(t *testing.T) {
	s, err := Compile(Object(map[string]*Property{
		"expression": String("Expression."),
	}, "expression"))
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NoError(t, s.Validate(map[string]any{"expression": "2 + 2"}))

	err = s.Validate(map[string]any{})
	require.Error(t, err)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	err = s.Validate(map[string]any{"expression": 42})
	assert.Error(t, err)
}

func TestCompileNil(t *testing.T) {
	s, err := Compile(nil)
	require.NoError(t, err)
	assert.Nil(t, s)

	// Nil schemas accept anything.
	assert.NoError(t, s.Validate(map[string]any{"whatever": true}))
	assert.Nil(t, s.Raw())
}

func TestCompileInvalidSchema(t *testing.T) {
	_, err := Compile(map[string]any{"type": 12345})
	assert.Error(t, err)
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile(map[string]any{"type": 12345})
	})
}
