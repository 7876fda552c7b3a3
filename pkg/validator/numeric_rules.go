package validator

const (
	CodeInvalidNumeric   = "INVALID_NUMERIC"
	CodeInvalidNumericLT = "INVALID_NUMERIC_LT"
	CodeInvalidNumericGT = "INVALID_NUMERIC_GT"
	CodeInvalidRange     = "INVALID_RANGE"
)

var numericMessages = Messages{
	CodeInvalidNumeric:   "%key%: %value% is not numeric",
	CodeInvalidNumericLT: "%key%: %value% is less than %min%",
	CodeInvalidNumericGT: "%key%: %value% is greater than %max%",
}

// NumericRule checks that the value is a number or a numeric string within
// the optional "min" and "max" bounds. The value is never converted.
type NumericRule struct {
	Base
	min, max       float64
	hasMin, hasMax bool
}

// NewNumericRule builds a numeric rule.
func NewNumericRule(key, value any, params Params) Rule {
	r := &NumericRule{Base: NewBase(key, value, params, numericMessages)}
	r.min, r.hasMin = params.Float(ParamMin)
	r.max, r.hasMax = params.Float(ParamMax)
	return r
}

func (r *NumericRule) Validate() Outcome {
	return r.Run(func() Outcome {
		n, ok := parseNumber(r.Value())
		if !ok {
			return r.Fail(CodeInvalidNumeric, nil)
		}
		if r.hasMin && n < r.min {
			return r.Fail(CodeInvalidNumericLT, map[string]string{"min": Stringify(r.min)})
		}
		if r.hasMax && n > r.max {
			return r.Fail(CodeInvalidNumericGT, map[string]string{"max": Stringify(r.max)})
		}
		return Valid
	})
}

var rangeMessages = Messages{
	CodeInvalidRange: "%key%: %value% is out of range",
}

// RangeRule checks that the value is one of the "range" entries. Matching is
// strict: the type must match as well, so "0" is not in [0].
type RangeRule struct {
	Base
	allowed []any
}

// NewRangeRule builds a range rule.
func NewRangeRule(key, value any, params Params) Rule {
	return &RangeRule{
		Base:    NewBase(key, value, params, rangeMessages),
		allowed: params.List(ParamRange),
	}
}

func (r *RangeRule) Validate() Outcome {
	return r.Run(func() Outcome {
		if !containsStrict(r.allowed, r.Value()) {
			return r.Fail(CodeInvalidRange, map[string]string{"range": Stringify(r.allowed)})
		}
		return Valid
	})
}
