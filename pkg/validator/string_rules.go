package validator

import (
	"strconv"
	"unicode/utf8"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
)

const (
	CodeInvalidString       = "INVALID_STRING"
	CodeInvalidStringLength = "INVALID_STRING_LENGTH"
)

var stringMessages = Messages{
	CodeInvalidString:       "%key% does not have a string value: %value%",
	CodeInvalidStringLength: "%key%: The length of %value% is not between %min% and %max%",
}

// StringRule checks that the value is a string whose length in runes lies
// within [min, max]. A max of 0 means unbounded.
type StringRule struct {
	Base
	min int
	max int
}

// NewStringRule builds a string rule from the "min" and "max" params.
func NewStringRule(key, value any, params Params) Rule {
	return newStringRule(key, value, params)
}

func newStringRule(key, value any, params Params) *StringRule {
	return &StringRule{
		Base: NewBase(key, value, params, stringMessages),
		min:  params.Int(ParamMin, 0),
		max:  params.Int(ParamMax, 0),
	}
}

func (r *StringRule) Validate() Outcome {
	return r.Run(r.check)
}

func (r *StringRule) check() Outcome {
	s, ok := r.Value().(string)
	if !ok {
		return r.Fail(CodeInvalidString, nil)
	}

	n := utf8.RuneCountInString(s)
	upper := r.max
	if upper == 0 {
		upper = n
	}
	if n < r.min || n > upper {
		return r.Fail(CodeInvalidStringLength, map[string]string{
			"min": strconv.Itoa(r.min),
			"max": strconv.Itoa(r.max),
		})
	}
	return Valid
}

// StringCleanerRule is a StringRule whose value, once valid, is cleaned:
// percent-decoded, stripped of control characters and backticks, and of
// HTML tags when "strip_tags" is set (the default). Cleaning never happens
// before validation, so a failing value is reported as given.
type StringCleanerRule struct {
	*StringRule
	stripTags bool
}

// NewStringCleanerRule builds a string cleaner rule.
func NewStringCleanerRule(key, value any, params Params) Rule {
	return &StringCleanerRule{
		StringRule: newStringRule(key, value, params),
		stripTags:  params.Bool(ParamStripTags, true),
	}
}

func (r *StringCleanerRule) Validate() Outcome {
	out := r.StringRule.Validate()
	if out != Valid {
		return out
	}
	if s, ok := r.Value().(string); ok {
		r.SetValue(r.clean(s))
	}
	return Valid
}

func (r *StringCleanerRule) clean(s string) string {
	transforms := []func(string) string{
		sanitizer.PercentDecode,
		sanitizer.RemoveControlChars,
		sanitizer.RemoveBackticks,
	}
	if r.stripTags {
		transforms = append(transforms, sanitizer.StripTags)
	}
	transforms = append(transforms, sanitizer.TrimBlank)
	return sanitizer.Apply(s, transforms...)
}
