package validator

import "strconv"

const (
	CodeInvalidChoices     = "INVALID_CHOICES"
	CodeInvalidChoiceItem  = "INVALID_CHOICE_ITEM"
	CodeInvalidArray       = "INVALID_ARRAY"
	CodeInvalidArrayLength = "INVALID_ARRAY_LENGTH"
)

var choicesMessages = Messages{
	CodeInvalidChoices:    "%key% does not have an array value: %value%",
	CodeInvalidChoiceItem: "%key%: %item% is not in the given list : %list%",
}

// ChoicesRule checks that every element of a sequence value is one of the
// "list" entries, using strict matching. Empty means nil or an empty sequence.
type ChoicesRule struct {
	Base
	list []any
}

// NewChoicesRule builds a choices rule.
func NewChoicesRule(key, value any, params Params) Rule {
	return &ChoicesRule{
		Base: NewBase(key, value, params, choicesMessages, WithEmpty(IsEmptySequence)),
		list: params.List(ParamList),
	}
}

func (r *ChoicesRule) Validate() Outcome {
	return r.Run(func() Outcome {
		items, ok := toSlice(r.Value())
		if !ok {
			return r.Fail(CodeInvalidChoices, nil)
		}
		for _, item := range items {
			if !containsStrict(r.list, item) {
				return r.Fail(CodeInvalidChoiceItem, map[string]string{
					"item": Stringify(item),
					"list": Stringify(r.list),
				})
			}
		}
		return Valid
	})
}

var arrayMessages = Messages{
	CodeInvalidArray:       "%key% does not have an array value: %value%",
	CodeInvalidArrayLength: "%key%: The length of %value% is not between %min% and %max%",
}

// ArrayRule checks that the value is a sequence or mapping whose element
// count lies within [min, max]. A max of 0 means unbounded.
type ArrayRule struct {
	Base
	min int
	max int
}

// NewArrayRule builds an array rule.
func NewArrayRule(key, value any, params Params) Rule {
	return &ArrayRule{
		Base: NewBase(key, value, params, arrayMessages, WithEmpty(IsEmptySequence)),
		min:  params.Int(ParamMin, 0),
		max:  params.Int(ParamMax, 0),
	}
}

func (r *ArrayRule) Validate() Outcome {
	return r.Run(func() Outcome {
		n, ok := count(r.Value())
		if !ok {
			return r.Fail(CodeInvalidArray, nil)
		}
		upper := r.max
		if upper == 0 {
			upper = n
		}
		if n < r.min || n > upper {
			return r.Fail(CodeInvalidArrayLength, map[string]string{
				"min": strconv.Itoa(r.min),
				"max": strconv.Itoa(r.max),
			})
		}
		return Valid
	})
}

func count(v any) (int, bool) {
	if list, ok := toSlice(v); ok {
		return len(list), true
	}
	if isMapping(v) {
		return lenOf(v), true
	}
	return 0, false
}
