// Package tt provides shared test helpers: a mock model and assertion
// utilities used across the module's test suites.
package tt

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"

	"github.com/agentlet/agentlet"
)

// MockModel is a configurable mock that implements agentlet.Model.
// Responses are returned in the order they were queued; every call's
// messages are captured for inspection.
type MockModel struct {
	responses []*agentlet.ContentResponse
	errors    []error
	callCount int

	// CapturedMessages stores the messages passed to each GenerateContent
	// call. Populated automatically on every call.
	CapturedMessages [][]llms.MessageContent
}

// NewMockModel creates a new MockModel.
func NewMockModel() *MockModel {
	return &MockModel{}
}

// AddResponse queues a successful response with the given content.
func (m *MockModel) AddResponse(content string) *MockModel {
	m.responses = append(m.responses, &agentlet.ContentResponse{
		Content: content,
		Info:    &agentlet.GenerationInfo{},
	})
	m.errors = append(m.errors, nil)
	return m
}

// AddError queues a failing call.
func (m *MockModel) AddError(err error) *MockModel {
	m.responses = append(m.responses, nil)
	m.errors = append(m.errors, err)
	return m
}

// CallCount returns how many times GenerateContent was called.
func (m *MockModel) CallCount() int {
	return m.callCount
}

// GenerateContent implements agentlet.Model.
func (m *MockModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*agentlet.ContentResponse, error) {
	captured := make([]llms.MessageContent, len(messages))
	copy(captured, messages)
	m.CapturedMessages = append(m.CapturedMessages, captured)

	if m.callCount >= len(m.responses) {
		return nil, errors.New("mock model: no more queued responses")
	}
	i := m.callCount
	m.callCount++
	if m.errors[i] != nil {
		return nil, m.errors[i]
	}
	return m.responses[i], nil
}

// Compile-time check that MockModel implements agentlet.Model.
var _ agentlet.Model = (*MockModel)(nil)
