package validator

import (
	"strings"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Validator runs an ordered list of rule specs against a context and
// accumulates the validated context and the error list.
//
// A Validator is not safe for concurrent use; rule specs are read-only and
// may be shared between validators.
type Validator struct {
	context     Context
	rules       []RuleSpec
	stopOnError bool
	existing    bool
	scope       Scope

	validated Context
	errors    ValidationErrors
}

// New creates a validator for ctx. Specs may be nil and set later with SetRules.
func New(ctx Context, specs []RuleSpec, opts ...Option) *Validator {
	v := &Validator{
		context:   ctx,
		rules:     specs,
		scope:     defaultScope(),
		validated: make(Context),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Check is a one-shot helper: it validates ctx against specs and returns the
// validated context, or ValidationErrors when any rule failed.
func Check(ctx Context, specs []RuleSpec, opts ...Option) (Context, error) {
	v := New(ctx, specs, opts...)
	if !v.Validate() {
		return v.ValidatedContext(), v.Err()
	}
	return v.ValidatedContext(), nil
}

// SetRules replaces the rule specs used by subsequent Validate calls.
func (v *Validator) SetRules(specs ...RuleSpec) {
	v.rules = specs
}

// Rules returns the configured rule specs.
func (v *Validator) Rules() []RuleSpec {
	return v.rules
}

// SetContext swaps the context for subsequent Validate calls, which allows
// re-running a rule set against a sub-mapping of a prior validated context.
func (v *Validator) SetContext(ctx Context) {
	v.context = ctx
}

// Context returns the context under validation.
func (v *Validator) Context() Context {
	return v.context
}

// Get returns the raw context value for key, or nil when absent.
func (v *Validator) Get(key any) any {
	return v.context.Get(key)
}

// AppendExistingItemsOnly controls whether valid keys absent from the context
// are written to the validated context.
func (v *Validator) AppendExistingItemsOnly(existing bool) {
	v.existing = existing
}

// StopOnError reports whether evaluation halts at the first failing rule.
func (v *Validator) StopOnError() bool {
	return v.stopOnError
}

// Validate runs every rule spec in order against the context, replacing the
// validated context. It reports whether no rule failed.
func (v *Validator) Validate() bool {
	return v.validate(false)
}

// ValidateMerge is Validate but keeps the entries validated by prior calls,
// so nested passes extend the validated context instead of replacing it.
func (v *Validator) ValidateMerge() bool {
	return v.validate(true)
}

func (v *Validator) validate(merge bool) bool {
	if !merge || v.validated == nil {
		v.validated = make(Context)
	}
	v.errors = nil
	// keys that failed in this pass never reach the validated context
	failed := make(map[any]struct{})

	for _, spec := range v.rules {
		value := v.context.Get(spec.Key)
		rule := v.scope.Build(spec.Key, value, spec.Type, spec.Params)

		if rule.Validate() == Invalid {
			if isValidKey(spec.Key) {
				delete(v.validated, spec.Key)
				failed[spec.Key] = struct{}{}
			}
			v.errors.Add(newValidationError(spec, rule))
			v.scope.logger.Debug("rule failed",
				logger.Component("validator"),
				logger.RuleKey(spec.Key),
				logger.RuleType(string(spec.Type)),
				logger.Code(codeOf(rule)),
			)
			if v.stopOnError {
				break
			}
			continue
		}

		if v.existing && !v.context.Has(spec.Key) {
			continue
		}
		if !isValidKey(spec.Key) {
			continue
		}
		if _, ok := failed[spec.Key]; ok {
			continue
		}
		v.validated[spec.Key] = rule.Value()
	}

	return len(v.errors) == 0
}

// ValidatedContext returns the values of every key whose rule passed.
func (v *Validator) ValidatedContext() Context {
	return v.validated
}

// Errors returns the rendered messages of the last Validate call in evaluation order.
func (v *Validator) Errors() []string {
	return v.errors.Messages()
}

// ImplodedErrors joins the error messages with separator.
func (v *Validator) ImplodedErrors(separator string) string {
	return strings.Join(v.Errors(), separator)
}

// Err returns the failures of the last Validate call as ValidationErrors,
// or nil when it succeeded.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	out := make(ValidationErrors, len(v.errors))
	copy(out, v.errors)
	return out
}

func newValidationError(spec RuleSpec, rule Rule) ValidationError {
	ve := ValidationError{
		Field:   Stringify(spec.Key),
		Message: rule.Message(),
	}
	if coded, ok := rule.(Coded); ok {
		ve.TranslationKey = coded.Code()
		if ph := coded.Placeholders(); len(ph) > 0 {
			ve.TranslationValues = make(map[string]any, len(ph))
			for k, val := range ph {
				ve.TranslationValues[k] = val
			}
		}
	}
	return ve
}

func codeOf(rule Rule) string {
	if coded, ok := rule.(Coded); ok {
		return coded.Code()
	}
	return ""
}
