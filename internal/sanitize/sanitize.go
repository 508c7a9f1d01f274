// Package sanitize neutralizes user-submitted markup. The policy is
// "allow nothing": lynt content is plain text only.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = func() *bluemonday.Policy {
	p := bluemonday.StrictPolicy()
	p.SkipElementsContent("script", "style")
	return p
}()

// Clean strips every tag from raw and returns the remaining visible text.
// Script and style bodies are dropped entirely. Multi-byte characters pass
// through untouched.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}
	// bluemonday entity-escapes its output; undo that so stored content is
	// the literal text the user typed.
	return html.UnescapeString(policy.Sanitize(raw))
}

// HasLink reports whether s contains a hyperlink scheme token. A plain
// substring check, not URL validation; false positives are acceptable.
func HasLink(s string) bool {
	return strings.Contains(s, "http")
}
