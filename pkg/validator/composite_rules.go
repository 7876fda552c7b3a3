package validator

import "strings"

// Composite error codes.
const (
	CodeNoRules      = "NO_RULES"
	CodeInvalidRules = "INVALID_RULES"
	CodeInvalidOr    = "INVALID_OR"
)

// orSeparator joins nested failures reported by an OR composite.
const orSeparator = "; "

var compositeMessages = Messages{
	CodeNoRules:      "%key%: no alternative rule is configured",
	CodeInvalidRules: "%key%: invalid nested rules: %reason%",
}

// compositeRule holds what AND and OR share: the nested rule list and the
// scope nested rules are built in.
type compositeRule struct {
	Base
	rules    []NestedRule
	rulesErr error
	scope    Scope
}

func newCompositeRule(key, value any, params Params) compositeRule {
	rules, err := params.NestedRules()
	return compositeRule{
		Base:     NewBase(key, value, params, compositeMessages),
		rules:    rules,
		rulesErr: err,
	}
}

func (r *compositeRule) BindScope(s Scope) { r.scope = s }

func (r *compositeRule) build(nested NestedRule) Rule {
	return r.scope.Build(r.Key(), r.Value(), nested.Type, nested.Params)
}

// AndRule passes when every nested rule passes. Evaluation stops at the
// first nested failure, whose message becomes the composite's message.
// An empty nested list passes.
type AndRule struct {
	compositeRule
}

// NewAndRule builds an AND composite from the "rules" param.
func NewAndRule(key, value any, params Params) Rule {
	return &AndRule{compositeRule: newCompositeRule(key, value, params)}
}

func (r *AndRule) Validate() Outcome {
	return r.Run(func() Outcome {
		if r.rulesErr != nil {
			return r.Fail(CodeInvalidRules, map[string]string{"reason": r.rulesErr.Error()})
		}
		for _, nested := range r.rules {
			rule := r.build(nested)
			if rule.Validate() == Invalid {
				return r.FailWith(codeOf(rule), rule.Message())
			}
		}
		return Valid
	})
}

// OrRule passes when at least one nested rule passes, stopping at the first
// success. When every nested rule fails, the message lists all failures.
// An empty nested list fails with NO_RULES.
type OrRule struct {
	compositeRule
}

// NewOrRule builds an OR composite from the "rules" param.
func NewOrRule(key, value any, params Params) Rule {
	return &OrRule{compositeRule: newCompositeRule(key, value, params)}
}

func (r *OrRule) Validate() Outcome {
	return r.Run(func() Outcome {
		if r.rulesErr != nil {
			return r.Fail(CodeInvalidRules, map[string]string{"reason": r.rulesErr.Error()})
		}
		if len(r.rules) == 0 {
			return r.Fail(CodeNoRules, nil)
		}
		messages := make([]string, 0, len(r.rules))
		for _, nested := range r.rules {
			rule := r.build(nested)
			if rule.Validate() != Invalid {
				return Valid
			}
			messages = append(messages, rule.Message())
		}
		return r.FailWith(CodeInvalidOr, strings.Join(messages, orSeparator))
	})
}
