package validator

import "github.com/dmitrymomot/formguard/pkg/sanitizer"

// Outcome is the result of a rule evaluation.
type Outcome int

const (
	// Valid means the value passed the rule.
	Valid Outcome = iota
	// Invalid means the value failed the rule; the rule's Message explains why.
	Invalid
	// Continue is returned by the presence check only and instructs the
	// concrete rule to run its own predicate. It never leaves Base.Run.
	Continue
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Continue:
		return "continue"
	}
	return "unknown"
}

// Rule is the contract every rule satisfies. Instances are built per
// evaluation and discarded afterwards.
type Rule interface {
	Validate() Outcome
	// Value returns the possibly transformed value. Meaningful after Validate.
	Value() any
	// Message returns the rendered error, or "" when the rule passed.
	Message() string
}

// Coded is implemented by rules that expose the code and placeholders of
// their last failure. Base provides it.
type Coded interface {
	Code() string
	Placeholders() map[string]string
}

// Constructor builds a rule from a key, the raw value and its parameters.
type Constructor func(key, value any, params Params) Rule

// BaseOption customizes a Base.
type BaseOption func(*Base)

// WithEmpty replaces the default emptiness predicate.
func WithEmpty(fn func(any) bool) BaseOption {
	return func(b *Base) {
		if fn != nil {
			b.isEmpty = fn
		}
	}
}

// WithTrimDefault sets the trim default used when the trim param is absent.
func WithTrimDefault(trim bool) BaseOption {
	return func(b *Base) { b.trimDefault = trim }
}

// Base carries the state and behavior shared by every rule: trimming, the
// presence check, and message rendering. Concrete rules embed it and call Run.
type Base struct {
	key         any
	value       any
	required    bool
	trimDefault bool
	messages    Messages
	isEmpty     func(any) bool

	code         string
	message      string
	placeholders map[string]string
}

// NewBase prepares the shared rule state. String values are trimmed before
// any check unless the trim param is false.
func NewBase(key, value any, params Params, defaults Messages, opts ...BaseOption) Base {
	b := Base{
		key:         key,
		value:       value,
		trimDefault: true,
		isEmpty:     IsEmptyScalar,
	}
	for _, opt := range opts {
		opt(&b)
	}
	b.required = params.Bool(ParamRequired, false)
	if s, ok := value.(string); ok && params.Bool(ParamTrim, b.trimDefault) {
		b.value = sanitizer.TrimBlank(s)
	}
	b.messages = newMessageTable(defaults, params.Messages())
	return b
}

// IsEmptyScalar is the default emptiness predicate: nil or "".
func IsEmptyScalar(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// IsEmptySequence treats nil and zero-length sequences or mappings as empty.
func IsEmptySequence(v any) bool {
	if v == nil {
		return true
	}
	if list, ok := toSlice(v); ok {
		return len(list) == 0
	}
	if isMapping(v) {
		return lenOf(v) == 0
	}
	return false
}

// CheckPresence runs the empty/required short-circuit.
func (b *Base) CheckPresence() Outcome {
	if !b.isEmpty(b.value) {
		return Continue
	}
	if b.required {
		return b.Fail(CodeRequired, nil)
	}
	return Valid
}

// Run composes the presence check with the rule-specific check, which is
// invoked only when the value is present.
func (b *Base) Run(check func() Outcome) Outcome {
	b.code, b.message, b.placeholders = "", "", nil
	if out := b.CheckPresence(); out != Continue {
		return out
	}
	out := check()
	if out == Continue {
		return Valid
	}
	return out
}

// Fail renders the template registered for code and records it as the
// rule's error. It always returns Invalid.
func (b *Base) Fail(code string, placeholders map[string]string) Outcome {
	values := map[string]string{
		"key":   Stringify(b.key),
		"value": Stringify(b.value),
	}
	for name, v := range placeholders {
		values[name] = v
	}
	b.code = code
	b.placeholders = values
	b.message = FormatMessage(b.messages[code], values)
	return Invalid
}

// FailWith records an already rendered message, as composites do when they
// surface nested failures verbatim.
func (b *Base) FailWith(code, message string) Outcome {
	b.code = code
	b.message = message
	b.placeholders = map[string]string{"key": Stringify(b.key), "value": Stringify(b.value)}
	return Invalid
}

func (b *Base) Key() any { return b.key }

func (b *Base) Value() any { return b.value }

// SetValue replaces the value surfaced to the orchestrator.
func (b *Base) SetValue(v any) { b.value = v }

func (b *Base) Required() bool { return b.required }

func (b *Base) Message() string { return b.message }

func (b *Base) Code() string { return b.code }

func (b *Base) Placeholders() map[string]string { return b.placeholders }

// Template returns the template registered for code.
func (b *Base) Template(code string) string { return b.messages[code] }
