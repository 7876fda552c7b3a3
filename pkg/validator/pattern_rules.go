package validator

import (
	"regexp"
	"strings"
)

const (
	CodeInvalidMatch   = "INVALID_MATCH"
	CodeInvalidPattern = "INVALID_PATTERN"
)

var matchMessages = Messages{
	CodeInvalidMatch:   "%key%: %value% does not match %pattern%",
	CodeInvalidPattern: "%key%: %pattern% is not a valid pattern",
}

// MatchRule checks a string value against "pattern". Both Go regexp syntax
// and delimited patterns such as /^[a-z]+$/i are accepted; the i, m, s and U
// flags of a delimited pattern map to Go inline flags.
type MatchRule struct {
	Base
	pattern string
}

// NewMatchRule builds a match rule. The pattern is compiled lazily, through a
// process-wide cache, so that an invalid pattern is reported as a failure.
func NewMatchRule(key, value any, params Params) Rule {
	return &MatchRule{
		Base:    NewBase(key, value, params, matchMessages),
		pattern: params.String(ParamPattern, ""),
	}
}

func (r *MatchRule) Validate() Outcome {
	return r.Run(func() Outcome {
		placeholders := map[string]string{"pattern": r.pattern}
		re, err := patterns.compile(r.pattern)
		if err != nil {
			return r.Fail(CodeInvalidPattern, placeholders)
		}
		s, ok := r.Value().(string)
		if !ok || !re.MatchString(s) {
			return r.Fail(CodeInvalidMatch, placeholders)
		}
		return Valid
	})
}

// CompilePattern compiles a Go regexp or a /delimited/flags pattern.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if len(pattern) >= 2 && pattern[0] == '/' {
		if end := strings.LastIndexByte(pattern, '/'); end > 0 {
			body, flags := pattern[1:end], pattern[end+1:]
			if validPatternFlags(flags) {
				if flags != "" {
					body = "(?" + flags + ")" + body
				}
				return regexp.Compile(body)
			}
		}
	}
	return regexp.Compile(pattern)
}

func validPatternFlags(flags string) bool {
	for _, f := range flags {
		if !strings.ContainsRune("imsU", f) {
			return false
		}
	}
	return true
}
