package validator

import (
	"strconv"
	"strings"
)

// Collection error codes.
const (
	CodeInvalidCollection = "INVALID_COLLECTION"
	CodeInvalidItem       = "INVALID_ITEM"
	CodeInvalidItemRules  = "INVALID_ITEM_RULES"
)

// itemErrorSeparator joins the failures of a single collection element.
const itemErrorSeparator = ", "

var collectionMessages = Messages{
	CodeInvalidCollection: "%key% does not have a collection value: %value%",
	CodeInvalidItem:       "%key%: item %index% is not a mapping: %item%",
	CodeInvalidItemRules:  "%key%: item %index% is not valid: %errors%",
	CodeInvalidRules:      "%key%: invalid nested rules: %reason%",
}

// CollectionRule validates a sequence of sub-mappings, running a nested
// validator with the "rules" specs against every element. The first failing
// element fails the whole rule and nothing transformed is surfaced. On
// success the value is the sequence of validated elements.
type CollectionRule struct {
	Base
	specs       []RuleSpec
	specsErr    error
	stopOnError bool
	scope       Scope
}

// NewCollectionRule builds a collection composite. The optional
// "stop_on_error" param applies to the per-element validators.
func NewCollectionRule(key, value any, params Params) Rule {
	specs, err := params.Specs()
	return &CollectionRule{
		Base:        NewBase(key, value, params, collectionMessages, WithEmpty(IsEmptySequence)),
		specs:       specs,
		specsErr:    err,
		stopOnError: params.Bool(ParamStopOnError, false),
	}
}

func (r *CollectionRule) BindScope(s Scope) { r.scope = s }

func (r *CollectionRule) Validate() Outcome {
	return r.Run(r.check)
}

func (r *CollectionRule) check() Outcome {
	if r.specsErr != nil {
		return r.Fail(CodeInvalidRules, map[string]string{"reason": r.specsErr.Error()})
	}
	items, ok := toSlice(r.Value())
	if !ok {
		return r.Fail(CodeInvalidCollection, nil)
	}

	validated := make([]any, 0, len(items))
	for i, item := range items {
		ctx, ok := AsContext(item)
		if !ok {
			return r.Fail(CodeInvalidItem, map[string]string{
				"index": strconv.Itoa(i),
				"item":  Stringify(item),
			})
		}

		v := r.scope.NewValidator(ctx, r.specs, WithStopOnError(r.stopOnError))
		if !v.Validate() {
			return r.Fail(CodeInvalidItemRules, map[string]string{
				"index":  strconv.Itoa(i),
				"errors": strings.Join(v.Errors(), itemErrorSeparator),
			})
		}
		validated = append(validated, v.ValidatedContext())
	}

	r.SetValue(validated)
	return Valid
}
