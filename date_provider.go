package agentlet

import "time"

// DefaultDateLayout is the layout used by [CurrentDateProvider] when none is
// configured.
const DefaultDateLayout = "2006-01-02 15:04:05"

// Clock abstracts the time source so time-dependent providers can be tested
// with a fixed time.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the standard Clock backed by the system clock.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock that always returns the same time.
// Useful for testing time-dependent providers.
type FixedClock struct {
	fixed time.Time
}

// NewFixedClock creates a FixedClock returning t.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{fixed: t}
}

// SetTime updates the time returned by Now.
func (c *FixedClock) SetTime(t time.Time) {
	c.fixed = t
}

// Now returns the fixed time.
func (c *FixedClock) Now() time.Time {
	return c.fixed
}

// CurrentDateProvider is a [ContextProvider] that reports the current
// timestamp, formatted with a Go time layout.
//
// Timestamps are normalized to UTC by default rather than the ambient local
// zone, so prompts are reproducible regardless of where the process runs.
// Use [CurrentDateProvider.WithLocation] to report another zone.
//
//	provider := agentlet.NewCurrentDateProvider("Datetime Context Provider")
//	provider.Info() // "Date: 2025-02-15 14:30:00"
type CurrentDateProvider struct {
	title  string
	layout string
	loc    *time.Location
	clock  Clock
}

// NewCurrentDateProvider creates a provider with the given title,
// [DefaultDateLayout], UTC timestamps, and the system clock.
func NewCurrentDateProvider(title string) *CurrentDateProvider {
	return &CurrentDateProvider{
		title:  title,
		layout: DefaultDateLayout,
		loc:    time.UTC,
		clock:  SystemClock{},
	}
}

// WithLayout sets the Go time layout used to format the timestamp.
// Returns self for chaining.
func (p *CurrentDateProvider) WithLayout(layout string) *CurrentDateProvider {
	p.layout = layout
	return p
}

// WithLocation sets the time zone the timestamp is reported in.
// Returns self for chaining.
func (p *CurrentDateProvider) WithLocation(loc *time.Location) *CurrentDateProvider {
	p.loc = loc
	return p
}

// WithClock replaces the time source. Returns self for chaining.
func (p *CurrentDateProvider) WithClock(clock Clock) *CurrentDateProvider {
	p.clock = clock
	return p
}

// Title returns the configured display name.
func (p *CurrentDateProvider) Title() string {
	return p.title
}

// Info returns "Date: " followed by the current timestamp. The result is a
// pure function of the clock, layout, and location; nothing is cached.
func (p *CurrentDateProvider) Info() string {
	return "Date: " + p.clock.Now().In(p.loc).Format(p.layout)
}

// Compile-time check that CurrentDateProvider implements ContextProvider.
var _ ContextProvider = (*CurrentDateProvider)(nil)
