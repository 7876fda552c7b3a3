package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Universal and built-in parameter names.
const (
	ParamRequired    = "required"
	ParamTrim        = "trim"
	ParamMessages    = "messages"
	ParamRules       = "rules"
	ParamStopOnError = "stop_on_error"
	ParamMin         = "min"
	ParamMax         = "max"
	ParamPattern     = "pattern"
	ParamList        = "list"
	ParamRange       = "range"
	ParamSign        = "sign"
	ParamExpected    = "expected"
	ParamFlag        = "flag"
	ParamDecode      = "decode"
	ParamFormat      = "format"
	ParamVersion     = "version"
	ParamStripTags   = "strip_tags"
)

// Params holds a rule's configuration. Unrecognized entries are ignored by
// every rule; malformed entries fall back to the documented default.
type Params map[string]any

// Has reports whether name is set.
func (p Params) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Bool reads a boolean parameter. Strings such as "true" or "1" are accepted.
func (p Params) Bool(name string, def bool) bool {
	v, ok := p[name]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return def
		}
		return parsed
	}
	if n, ok := toNumber(v); ok {
		return n != 0
	}
	return def
}

// Int reads an integer parameter. Floats are truncated; numeric strings are parsed.
func (p Params) Int(name string, def int) int {
	v, ok := p[name]
	if !ok || v == nil {
		return def
	}
	n, ok := parseNumber(v)
	if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
		return def
	}
	return int(n)
}

// Float reads a numeric parameter and reports whether it was set to a number.
func (p Params) Float(name string) (float64, bool) {
	v, ok := p[name]
	if !ok || v == nil {
		return 0, false
	}
	return parseNumber(v)
}

// String reads a string parameter. Non-string scalars are formatted with Stringify.
func (p Params) String(name, def string) string {
	v, ok := p[name]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return Stringify(v)
}

// List reads a sequence parameter as []any.
func (p Params) List(name string) []any {
	v, ok := p[name]
	if !ok || v == nil {
		return nil
	}
	list, _ := toSlice(v)
	return list
}

// Messages reads the message override table. Both Messages and decoded
// map[string]any forms are supported.
func (p Params) Messages() Messages {
	v, ok := p[ParamMessages]
	if !ok || v == nil {
		return nil
	}
	switch m := v.(type) {
	case Messages:
		return m
	case map[string]string:
		return Messages(m)
	case map[string]any:
		out := make(Messages, len(m))
		for code, tmpl := range m {
			out[code] = fmt.Sprint(tmpl)
		}
		return out
	}
	return nil
}

// NestedRules reads the rules parameter of a logical composite.
func (p Params) NestedRules() ([]NestedRule, error) {
	v, ok := p[ParamRules]
	if !ok || v == nil {
		return nil, nil
	}
	switch rules := v.(type) {
	case []NestedRule:
		return rules, nil
	case []any:
		return parseNestedRules(rules)
	}
	return nil, fmt.Errorf("%w: %q must be a list of rules, got %T", ErrInvalidSpec, ParamRules, v)
}

// Specs reads the rules parameter of a collection composite.
func (p Params) Specs() ([]RuleSpec, error) {
	v, ok := p[ParamRules]
	if !ok || v == nil {
		return nil, nil
	}
	switch specs := v.(type) {
	case []RuleSpec:
		return specs, nil
	case []any:
		return ParseSpecs(specs)
	}
	return nil, fmt.Errorf("%w: %q must be a list of rule specs, got %T", ErrInvalidSpec, ParamRules, v)
}

// With returns a copy of p with name set to value.
func (p Params) With(name string, value any) Params {
	out := make(Params, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[name] = value
	return out
}
