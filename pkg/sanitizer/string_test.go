package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes leading and trailing spaces", "  hello world  ", "hello world"},
		{"removes tabs and newlines", "\t\nhello\n\t", "hello"},
		{"handles empty string", "", ""},
		{"handles whitespace-only string", "   \t\n  ", ""},
		{"preserves internal whitespace", "  hello  world  ", "hello  world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.Trim(tt.input))
		})
	}
}

func TestTrimBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"trims spaces", " Ben ", "Ben"},
		{"trims NUL bytes", "\x00", ""},
		{"trims mixed NUL and whitespace", "\x00 Ben\t\x00", "Ben"},
		{"keeps inner NUL bytes", "f\x00f", "f\x00f"},
		{"trims vertical tabs", "\vx\v", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.TrimBlank(tt.input))
		})
	}
}

func TestMaxLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"truncates long string", "hello world", 5, "hello"},
		{"keeps short string", "hi", 5, "hi"},
		{"counts runes not bytes", "héllo", 2, "hé"},
		{"zero length yields empty", "hello", 0, ""},
		{"negative length yields empty", "hello", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.MaxLength(tt.input, tt.maxLen))
		})
	}
}

func TestRemoveExtraWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", sanitizer.RemoveExtraWhitespace("  a   b\t\tc  "))
	assert.Equal(t, "line one line two", sanitizer.SingleLine("line one\r\nline two\n"))
}

func TestRemoveControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes NUL", "f\x00f", "ff"},
		{"removes DEL", "\x7FPeter", "Peter"},
		{"keeps newline and tab", "a\nb\tc", "a\nb\tc"},
		{"keeps unicode text", "héllo", "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.RemoveControlChars(tt.input))
		})
	}
}

func TestRemoveBackticks(t *testing.T) {
	assert.Equal(t, "rm -rf", sanitizer.RemoveBackticks("`rm -rf`"))
	assert.Equal(t, "plain", sanitizer.RemoveBackticks("plain"))
}

func TestPercentDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"decodes escapes", "%7FPeter", "\x7FPeter"},
		{"decodes spaces", "a%20b", "a b"},
		{"keeps plus sign", "a+b", "a+b"},
		{"returns malformed input unchanged", "100%", "100%"},
		{"returns plain input unchanged", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.PercentDecode(tt.input))
		})
	}
}
