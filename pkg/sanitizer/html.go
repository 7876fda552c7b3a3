package sanitizer

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips every element; policies are safe for concurrent use
// once built.
var strictPolicy = bluemonday.StrictPolicy()

// StripTags removes all HTML tags and returns plain text with entities
// unescaped.
func StripTags(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
