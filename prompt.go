package agentlet

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed prompt.tmpl
var systemPromptTemplateContent string

// systemPromptTemplate renders the assembled system prompt.
// Parsed once at init; the template is static.
var systemPromptTemplate = template.Must(
	template.New("system_prompt").Parse(systemPromptTemplateContent),
)

// PromptInfo holds the structured pieces of a system prompt.
//
// Each field renders as a bulleted section; empty sections are omitted from
// the generated prompt (Background always renders its heading, since a prompt
// without identity is almost certainly a bug the author wants to see).
type PromptInfo struct {
	// Background describes who the assistant is and what it is for.
	Background []string

	// Steps describes the internal procedure the assistant should follow.
	Steps []string

	// OutputInstructions constrains how the assistant should respond.
	OutputInstructions []string
}

// providerEntry pairs a registration key with its provider, preserving
// registration order so generated prompts are deterministic.
type providerEntry struct {
	key      string
	provider ContextProvider
}

// SystemPromptGenerator assembles a system prompt from a [PromptInfo] and a
// set of registered [ContextProvider] values.
//
// # Generated Structure
//
//	# IDENTITY and PURPOSE
//	- <each background line>
//
//	# INTERNAL ASSISTANT STEPS
//	- <each step>
//
//	# OUTPUT INSTRUCTIONS
//	- <each instruction>
//
//	# EXTRA INFORMATION AND CONTEXT
//
//	## <provider title>
//	<provider info>
//
// Provider blocks render in registration order. Provider Info is queried
// fresh on every Generate call, so time-dependent providers always reflect
// the moment the prompt is built.
type SystemPromptGenerator struct {
	info      PromptInfo
	providers []providerEntry
}

// NewSystemPromptGenerator creates a generator for the given prompt info.
func NewSystemPromptGenerator(info PromptInfo) *SystemPromptGenerator {
	return &SystemPromptGenerator{
		info:      info,
		providers: make([]providerEntry, 0),
	}
}

// RegisterProvider registers a context provider under the given key,
// replacing any provider already registered under that key (the original
// registration position is kept on replacement). Returns self for chaining.
func (g *SystemPromptGenerator) RegisterProvider(
	key string,
	provider ContextProvider,
) *SystemPromptGenerator {
	for i, entry := range g.providers {
		if entry.key == key {
			g.providers[i].provider = provider
			return g
		}
	}
	g.providers = append(g.providers, providerEntry{key: key, provider: provider})
	return g
}

// UnregisterProvider removes the provider registered under key, if any.
// Returns self for chaining.
func (g *SystemPromptGenerator) UnregisterProvider(key string) *SystemPromptGenerator {
	for i, entry := range g.providers {
		if entry.key == key {
			g.providers = append(g.providers[:i], g.providers[i+1:]...)
			return g
		}
	}
	return g
}

// Provider returns the provider registered under key, or false if none is.
func (g *SystemPromptGenerator) Provider(key string) (ContextProvider, bool) {
	for _, entry := range g.providers {
		if entry.key == key {
			return entry.provider, true
		}
	}
	return nil, false
}

// Info returns the generator's prompt info.
func (g *SystemPromptGenerator) Info() PromptInfo {
	return g.info
}

// promptData is the data passed to the system prompt template.
type promptData struct {
	Background         []string
	Steps              []string
	OutputInstructions []string
	Providers          []renderedProvider
}

// renderedProvider is a provider's title and info captured at generation time.
type renderedProvider struct {
	Title string
	Info  string
}

// Generate renders the system prompt.
func (g *SystemPromptGenerator) Generate() (string, error) {
	data := promptData{
		Background:         g.info.Background,
		Steps:              g.info.Steps,
		OutputInstructions: g.info.OutputInstructions,
		Providers:          make([]renderedProvider, 0, len(g.providers)),
	}
	for _, entry := range g.providers {
		data.Providers = append(data.Providers, renderedProvider{
			Title: entry.provider.Title(),
			Info:  entry.provider.Info(),
		})
	}

	var buf bytes.Buffer
	if err := systemPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render system prompt: %w", err)
	}
	return buf.String(), nil
}
