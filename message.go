package agentlet

import (
	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// ChatMessageType converts the role to its LangChainGo equivalent.
// Unknown roles are treated as generic chat messages.
func (r Role) ChatMessageType() llms.ChatMessageType {
	switch r {
	case RoleSystem:
		return llms.ChatMessageTypeSystem
	case RoleUser:
		return llms.ChatMessageTypeHuman
	case RoleAssistant:
		return llms.ChatMessageTypeAI
	case RoleTool:
		return llms.ChatMessageTypeTool
	default:
		return llms.ChatMessageTypeGeneric
	}
}

// Message is a single conversation turn held in [Memory].
//
// ToolName and ToolCallID are only set on turns produced by or addressed to a
// tool; plain chat turns leave them empty.
type Message struct {
	// ID uniquely identifies the turn within a session.
	ID string `yaml:"id" json:"id"`

	// Role is the author of the turn.
	Role Role `yaml:"role" json:"role"`

	// Content is the turn's text.
	Content string `yaml:"content" json:"content"`

	// ToolName is the name of the tool involved in this turn, if any.
	ToolName string `yaml:"tool_name,omitempty" json:"tool_name,omitempty"`

	// ToolCallID correlates a tool result with the call that produced it.
	ToolCallID string `yaml:"tool_call_id,omitempty" json:"tool_call_id,omitempty"`
}

// NewMessage creates a Message with a fresh ID.
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}

// MessageContent converts the message into the LangChainGo wire shape.
func (m Message) MessageContent() llms.MessageContent {
	return llms.TextParts(m.Role.ChatMessageType(), m.Content)
}
