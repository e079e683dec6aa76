package tt

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tmc/langchaingo/llms"
)

// AssertTextEqual compares two multi-line strings and fails the test with a
// unified diff when they differ. Much easier to read than testify's default
// output for prompt-sized text.
func AssertTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("failed to diff strings: %v", err)
	}
	t.Errorf("text mismatch:\n%s", diff)
}

// MessageText concatenates the text parts of a langchaingo message.
// Fails the test if the message contains a non-text part.
func MessageText(t *testing.T, msg llms.MessageContent) string {
	t.Helper()
	var sb strings.Builder
	for _, part := range msg.Parts {
		text, ok := part.(llms.TextContent)
		if !ok {
			t.Fatalf("message part %T is not text", part)
		}
		sb.WriteString(text.Text)
	}
	return sb.String()
}
