package agentlet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

func TestMemory_AddAndDump(t *testing.T) {
	m := NewMemory()
	m.Add(RoleAssistant, "How do you do and what can I do for you today?")
	m.Add(RoleUser, "Hello!")

	dump := m.Dump()
	require.Len(t, dump, 2)
	assert.Equal(t, RoleAssistant, dump[0].Role)
	assert.Equal(t, "How do you do and what can I do for you today?", dump[0].Content)
	assert.Equal(t, RoleUser, dump[1].Role)
	assert.NotEmpty(t, dump[0].ID)
	assert.NotEqual(t, dump[0].ID, dump[1].ID)
}

func TestMemory_DumpReturnsCopy(t *testing.T) {
	m := NewMemory()
	m.Add(RoleUser, "original")

	dump := m.Dump()
	dump[0].Content = "mutated"

	assert.Equal(t, "original", m.Dump()[0].Content)
}

func TestMemory_Load(t *testing.T) {
	m := NewMemory()
	m.Add(RoleUser, "old turn")

	m.Load([]Message{
		{Role: RoleAssistant, Content: "greeting", ToolName: "no tool used"},
	})

	dump := m.Dump()
	require.Len(t, dump, 1)
	assert.Equal(t, RoleAssistant, dump[0].Role)
	assert.Equal(t, "greeting", dump[0].Content)
	assert.Equal(t, "no tool used", dump[0].ToolName)
	assert.NotEmpty(t, dump[0].ID, "loaded messages without IDs get one assigned")
}

func TestMemory_History(t *testing.T) {
	m := NewMemory()
	m.Add(RoleAssistant, "hi")
	m.Add(RoleUser, "hello")

	history := m.History()
	require.Len(t, history, 2)
	assert.Equal(t, llms.ChatMessageTypeAI, history[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, history[1].Role)
}

func TestMemory_MaxTurns(t *testing.T) {
	m := NewMemory().WithMaxTurns(2)
	m.Add(RoleUser, "first")
	m.Add(RoleAssistant, "second")
	m.Add(RoleUser, "third")

	dump := m.Dump()
	require.Len(t, dump, 2)
	assert.Equal(t, "second", dump[0].Content, "oldest turn is dropped")
	assert.Equal(t, "third", dump[1].Content)
}

func TestMemory_CopyIsIndependent(t *testing.T) {
	m := NewMemory()
	m.Add(RoleUser, "shared")

	cp := m.Copy()
	cp.Add(RoleAssistant, "only in copy")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, cp.Len())
}

func TestMemory_Reset(t *testing.T) {
	m := NewMemory().WithMaxTurns(5)
	m.Add(RoleUser, "turn")
	m.Reset()

	assert.Equal(t, 0, m.Len())
	_, ok := m.Last()
	assert.False(t, ok)
}

func TestMemory_SaveToLoadFrom(t *testing.T) {
	m := NewMemory()
	m.Add(RoleAssistant, "greeting")
	m.Add(RoleUser, "question with\nmultiple lines")

	var buf bytes.Buffer
	require.NoError(t, m.SaveTo(&buf))

	restored := NewMemory()
	require.NoError(t, restored.LoadFrom(&buf))

	assert.Equal(t, m.Dump(), restored.Dump())
}

func TestMemory_LoadFromRejectsGarbage(t *testing.T) {
	m := NewMemory()
	err := m.LoadFrom(bytes.NewBufferString("{not yaml: ["))
	assert.Error(t, err)
}
