package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RuleKey records the context key a rule is bound to under the key "key".
// Integer keys are kept as integers, anything else is formatted.
func RuleKey(key any) slog.Attr {
	switch k := key.(type) {
	case string:
		return slog.String("key", k)
	case int:
		return slog.Int("key", k)
	case nil:
		return slog.Attr{}
	}
	return slog.String("key", fmt.Sprint(key))
}

// RuleType records the rule type identifier under the key "rule".
func RuleType(typ string) slog.Attr {
	return slog.String("rule", typ)
}

// Code records an error code under the key "code".
func Code(code string) slog.Attr {
	return slog.String("code", code)
}

// Language records a language tag under the key "lang".
func Language(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
