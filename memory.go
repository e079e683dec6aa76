package agentlet

import (
	"fmt"
	"io"

	"github.com/tmc/langchaingo/llms"
	"gopkg.in/yaml.v3"
)

// Memory is an ordered, in-process conversation history.
//
// Memory is intentionally simple: a list of [Message] values mutated by a
// single goroutine. It has no internal locking. The zero value is not usable;
// create instances with [NewMemory].
//
// # Overflow
//
// By default the history grows without bound. Use [Memory.WithMaxTurns] to
// cap it; when the cap is exceeded the oldest turns are dropped so the most
// recent conversation is always retained.
//
// # Dump / Load
//
// Dump and Load round-trip the history through a plain []Message slice.
// SaveTo and LoadFrom do the same through YAML for callers that want to
// persist a session between runs.
type Memory struct {
	messages []Message
	maxTurns int
}

// NewMemory creates an empty Memory with no turn limit.
func NewMemory() *Memory {
	return &Memory{
		messages: make([]Message, 0),
	}
}

// WithMaxTurns caps the history at n turns. Zero or negative n means
// unlimited. Returns self for chaining.
func (m *Memory) WithMaxTurns(n int) *Memory {
	m.maxTurns = n
	m.trim()
	return m
}

// Add appends a new turn with the given role and content and returns it.
func (m *Memory) Add(role Role, content string) Message {
	msg := NewMessage(role, content)
	m.AddMessage(msg)
	return msg
}

// AddMessage appends an existing message to the history.
func (m *Memory) AddMessage(msg Message) {
	m.messages = append(m.messages, msg)
	m.trim()
}

// Load replaces the history with the given messages. Messages without an ID
// are assigned one. The input slice is copied; the caller keeps ownership.
func (m *Memory) Load(messages []Message) {
	m.messages = make([]Message, 0, len(messages))
	for _, msg := range messages {
		if msg.ID == "" {
			msg.ID = NewMessage(msg.Role, msg.Content).ID
		}
		m.messages = append(m.messages, msg)
	}
	m.trim()
}

// Dump returns a copy of the history.
func (m *Memory) Dump() []Message {
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// History converts the full history into LangChainGo message contents,
// preserving order.
func (m *Memory) History() []llms.MessageContent {
	out := make([]llms.MessageContent, 0, len(m.messages))
	for _, msg := range m.messages {
		out = append(out, msg.MessageContent())
	}
	return out
}

// Len returns the number of turns currently held.
func (m *Memory) Len() int {
	return len(m.messages)
}

// Last returns the most recent turn, or false if the history is empty.
func (m *Memory) Last() (Message, bool) {
	if len(m.messages) == 0 {
		return Message{}, false
	}
	return m.messages[len(m.messages)-1], true
}

// Reset clears the history. The turn cap is preserved.
func (m *Memory) Reset() {
	m.messages = m.messages[:0]
}

// Copy returns an independent copy of the memory. Mutating the copy never
// affects the original.
func (m *Memory) Copy() *Memory {
	cp := &Memory{
		messages: make([]Message, len(m.messages)),
		maxTurns: m.maxTurns,
	}
	copy(cp.messages, m.messages)
	return cp
}

// SaveTo writes the history as YAML.
func (m *Memory) SaveTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(m.messages); err != nil {
		return fmt.Errorf("failed to encode memory: %w", err)
	}
	return nil
}

// LoadFrom replaces the history with YAML previously written by SaveTo.
func (m *Memory) LoadFrom(r io.Reader) error {
	var messages []Message
	if err := yaml.NewDecoder(r).Decode(&messages); err != nil {
		return fmt.Errorf("failed to decode memory: %w", err)
	}
	m.Load(messages)
	return nil
}

// trim drops the oldest turns when the cap is exceeded.
func (m *Memory) trim() {
	if m.maxTurns <= 0 || len(m.messages) <= m.maxTurns {
		return
	}
	drop := len(m.messages) - m.maxTurns
	m.messages = append(m.messages[:0], m.messages[drop:]...)
}
