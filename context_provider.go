package agentlet

// ContextProvider supplies one named string fragment to be interpolated into
// a generated system prompt.
//
// Providers are read by the [SystemPromptGenerator] at prompt-generation time
// and must be safe to call repeatedly: Info should be a pure function of the
// provider's configuration and whatever external state it observes (e.g. the
// system clock), with no side effects and no cached results.
type ContextProvider interface {
	// Title returns the display name shown as the fragment's heading.
	Title() string

	// Info returns the fragment's content.
	Info() string
}

// ProviderFunc adapts a plain function into a [ContextProvider].
//
//	generator.RegisterProvider("env", agentlet.NewProviderFunc(
//	    "Environment", func() string { return "Region: " + region }))
type ProviderFunc struct {
	title string
	fn    func() string
}

// NewProviderFunc creates a ProviderFunc with the given title and function.
func NewProviderFunc(title string, fn func() string) *ProviderFunc {
	return &ProviderFunc{title: title, fn: fn}
}

// Title returns the display name.
func (p *ProviderFunc) Title() string {
	return p.title
}

// Info calls the wrapped function.
func (p *ProviderFunc) Info() string {
	return p.fn()
}

// Compile-time check that ProviderFunc implements ContextProvider.
var _ ContextProvider = (*ProviderFunc)(nil)
