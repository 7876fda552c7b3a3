package validator

import (
	"encoding/json"
	"net/mail"
	"net/netip"
	"strings"
	"time"
)

const (
	CodeInvalidEmail   = "INVALID_EMAIL"
	CodeInvalidIP      = "INVALID_IP"
	CodeInvalidFlag    = "INVALID_FLAG"
	CodeInvalidJSON    = "INVALID_JSON"
	CodeInvalidBoolean = "INVALID_BOOLEAN"
	CodeInvalidDate    = "INVALID_DATE"
)

var emailMessages = Messages{
	CodeInvalidEmail: "%key%: %value% is not a valid email",
}

// EmailRule checks that the value is a plain email address.
type EmailRule struct {
	Base
}

// NewEmailRule builds an email rule.
func NewEmailRule(key, value any, params Params) Rule {
	return &EmailRule{Base: NewBase(key, value, params, emailMessages)}
}

func (r *EmailRule) Validate() Outcome {
	return r.Run(func() Outcome {
		s, ok := r.Value().(string)
		if !ok || !isEmail(s) {
			return r.Fail(CodeInvalidEmail, nil)
		}
		return Valid
	})
}

// isEmail accepts bare addresses only: display names and angle brackets are
// rejected, and the domain needs at least one inner dot.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s || addr.Name != "" {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}

// IP version flags.
const (
	FlagIPv4 = "ipv4"
	FlagIPv6 = "ipv6"
)

var ipMessages = Messages{
	CodeInvalidIP:   "%key%: %value% is not a valid IP",
	CodeInvalidFlag: "Filter IP flag: %flag% is not valid",
}

// IPRule checks that the value is an IP address, restricted to one family
// when "flag" is ipv4 or ipv6.
type IPRule struct {
	Base
	flag string
}

// NewIPRule builds an IP rule.
func NewIPRule(key, value any, params Params) Rule {
	return &IPRule{
		Base: NewBase(key, value, params, ipMessages),
		flag: strings.ToLower(params.String(ParamFlag, "")),
	}
}

func (r *IPRule) Validate() Outcome {
	return r.Run(func() Outcome {
		if r.flag != "" && r.flag != FlagIPv4 && r.flag != FlagIPv6 {
			return r.Fail(CodeInvalidFlag, map[string]string{"flag": r.flag})
		}
		s, ok := r.Value().(string)
		if !ok {
			return r.Fail(CodeInvalidIP, nil)
		}
		addr, err := netip.ParseAddr(s)
		if err != nil || addr.Zone() != "" {
			return r.Fail(CodeInvalidIP, nil)
		}
		switch r.flag {
		case FlagIPv4:
			if !addr.Is4() {
				return r.Fail(CodeInvalidIP, nil)
			}
		case FlagIPv6:
			if !addr.Is6() {
				return r.Fail(CodeInvalidIP, nil)
			}
		}
		return Valid
	})
}

var jsonMessages = Messages{
	CodeInvalidJSON: "%key%: %value% is not a valid json format",
}

// JSONRule checks that the value is a JSON document. With "decode" set, the
// value becomes the decoded data and JSON objects become Contexts, ready for
// a nested validation pass.
type JSONRule struct {
	Base
	decode bool
}

// NewJSONRule builds a JSON rule.
func NewJSONRule(key, value any, params Params) Rule {
	return &JSONRule{
		Base:   NewBase(key, value, params, jsonMessages),
		decode: params.Bool(ParamDecode, false),
	}
}

func (r *JSONRule) Validate() Outcome {
	return r.Run(func() Outcome {
		var raw []byte
		switch v := r.Value().(type) {
		case string:
			raw = []byte(v)
		case []byte:
			raw = v
		case json.RawMessage:
			raw = v
		default:
			return r.Fail(CodeInvalidJSON, nil)
		}
		if !json.Valid(raw) {
			return r.Fail(CodeInvalidJSON, nil)
		}
		if r.decode {
			var decoded any
			if err := json.Unmarshal(raw, &decoded); err != nil {
				return r.Fail(CodeInvalidJSON, nil)
			}
			r.SetValue(toContextTree(decoded))
		}
		return Valid
	})
}

// toContextTree converts decoded JSON objects, at any depth, into Contexts.
func toContextTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		ctx := make(Context, len(val))
		for k, item := range val {
			ctx[k] = toContextTree(item)
		}
		return ctx
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toContextTree(item)
		}
		return out
	}
	return v
}

var booleanMessages = Messages{
	CodeInvalidBoolean: "%key%: %value% is not a valid boolean",
}

// BooleanRule accepts booleans, the numbers 1 and 0, and the strings
// 1, 0, true, false, on, off, yes and no in any case. The value is not converted.
type BooleanRule struct {
	Base
}

// NewBooleanRule builds a boolean rule.
func NewBooleanRule(key, value any, params Params) Rule {
	return &BooleanRule{Base: NewBase(key, value, params, booleanMessages)}
}

func (r *BooleanRule) Validate() Outcome {
	return r.Run(func() Outcome {
		if !isBoolean(r.Value()) {
			return r.Fail(CodeInvalidBoolean, nil)
		}
		return Valid
	})
}

func isBoolean(v any) bool {
	switch b := v.(type) {
	case bool:
		return true
	case string:
		switch strings.ToLower(b) {
		case "1", "0", "true", "false", "on", "off", "yes", "no":
			return true
		}
		return false
	}
	if n, ok := toNumber(v); ok {
		return n == 0 || n == 1
	}
	return false
}

// DefaultDateFormat is the layout used by DateRule without a "format" param.
const DefaultDateFormat = time.DateOnly

var dateMessages = Messages{
	CodeInvalidDate: "%key%: %value% is not a valid date for format %format%",
}

// DateRule checks that a string value parses with the Go time layout in
// "format". The value is not converted.
type DateRule struct {
	Base
	format string
}

// NewDateRule builds a date rule.
func NewDateRule(key, value any, params Params) Rule {
	return &DateRule{
		Base:   NewBase(key, value, params, dateMessages),
		format: params.String(ParamFormat, DefaultDateFormat),
	}
}

func (r *DateRule) Validate() Outcome {
	return r.Run(func() Outcome {
		placeholders := map[string]string{"format": r.format}
		switch v := r.Value().(type) {
		case time.Time:
			return Valid
		case string:
			if _, err := time.Parse(r.format, v); err != nil {
				return r.Fail(CodeInvalidDate, placeholders)
			}
			return Valid
		}
		return r.Fail(CodeInvalidDate, placeholders)
	})
}
