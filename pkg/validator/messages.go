package validator

import (
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// Error codes shared by every rule.
const (
	CodeRequired   = "REQUIRED"
	CodeUnknown    = "UNKNOWN_RULE"
	CodeInvalidKey = "INVALID_KEY"
	CodeMaxDepth   = "MAX_DEPTH"
)

// Messages maps an error code to its message template. Templates reference
// placeholders as %name%; %key% and %value% are always available.
type Messages map[string]string

var baseMessages = Messages{
	CodeRequired:   "%key% is required and should not be empty: %value%",
	CodeUnknown:    "%key%: unknown rule type %type%",
	CodeInvalidKey: "%key%: key must be a string or an integer",
	CodeMaxDepth:   "%key%: rule nesting exceeds the maximum depth of %depth%",
}

// newMessageTable builds an immutable per-rule table. Later layers win per code.
func newMessageTable(layers ...Messages) Messages {
	table := make(Messages, len(baseMessages))
	for code, tmpl := range baseMessages {
		table[code] = tmpl
	}
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if err := mergo.Merge(&table, layer, mergo.WithOverride); err != nil {
			panic(fmt.Errorf("validator: merge message table: %w", err))
		}
	}
	return table
}

// FormatMessage substitutes %name% placeholders in tmpl. Unknown
// placeholders are left untouched.
func FormatMessage(tmpl string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(tmpl, "%") {
		return tmpl
	}
	pairs := make([]string, 0, len(values)*2)
	for name, val := range values {
		pairs = append(pairs, "%"+name+"%", val)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
