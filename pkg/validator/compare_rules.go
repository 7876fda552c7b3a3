package validator

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

const (
	CodeInvalidCompare = "INVALID_COMPARE"
	CodeInvalidSign    = "INVALID_SIGN"
)

// Sign selects the comparison a CompareRule applies.
type Sign string

const (
	SignEQ   Sign = "eq"   // loosely equal
	SignSEQ  Sign = "seq"  // identical: same type and value
	SignNEQ  Sign = "neq"  // loosely not equal
	SignNSEQ Sign = "nseq" // not identical
	SignLTE  Sign = "lte"
	SignGTE  Sign = "gte"
	SignLT   Sign = "lt"
	SignGT   Sign = "gt"
)

type comparator struct {
	label   string
	compare func(value, expected any) bool
}

var comparators = map[Sign]comparator{
	SignEQ:   {"equal to", looseEqual},
	SignSEQ:  {"identical to", strictEqual},
	SignNEQ:  {"not equal to", func(a, b any) bool { return !looseEqual(a, b) }},
	SignNSEQ: {"not identical to", func(a, b any) bool { return !strictEqual(a, b) }},
	SignLTE:  {"less or equal to", ordered(func(c int) bool { return c <= 0 })},
	SignGTE:  {"greater or equal to", ordered(func(c int) bool { return c >= 0 })},
	SignLT:   {"less than", ordered(func(c int) bool { return c < 0 })},
	SignGT:   {"greater than", ordered(func(c int) bool { return c > 0 })},
}

var compareMessages = Messages{
	CodeInvalidCompare: "%key%: %value% is not %label% %expected%",
	CodeInvalidSign:    "%key%: unsupported comparison sign %sign%",
}

// CompareRule compares the value against "expected" using "sign" (eq by default).
type CompareRule struct {
	Base
	sign     Sign
	expected any
}

// NewCompareRule builds a compare rule.
func NewCompareRule(key, value any, params Params) Rule {
	return &CompareRule{
		Base:     NewBase(key, value, params, compareMessages),
		sign:     Sign(strings.ToLower(params.String(ParamSign, string(SignEQ)))),
		expected: params[ParamExpected],
	}
}

func (r *CompareRule) Validate() Outcome {
	return r.Run(func() Outcome {
		c, ok := comparators[r.sign]
		if !ok {
			return r.Fail(CodeInvalidSign, map[string]string{"sign": string(r.sign)})
		}
		if !c.compare(r.Value(), r.expected) {
			return r.Fail(CodeInvalidCompare, map[string]string{
				"label":    c.label,
				"expected": Stringify(r.expected),
				"sign":     string(r.sign),
			})
		}
		return Valid
	})
}

// looseEqual compares numerically when both sides are numeric, booleans by
// value, and everything else by its text form.
func looseEqual(a, b any) bool {
	if x, ok := parseNumber(a); ok {
		if y, ok := parseNumber(b); ok {
			return x == y
		}
	}
	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			return x == y
		}
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Stringify(a) == Stringify(b)
}

// strictEqual requires identical dynamic types and deeply equal values.
func strictEqual(a, b any) (equal bool) {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	defer func() {
		// cmp panics on unexported struct fields; fall back to reflection
		if recover() != nil {
			equal = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

// ordered builds a comparator over numbers (numerically) and strings
// (lexically). Any other pairing fails the comparison.
func ordered(accept func(int) bool) func(a, b any) bool {
	return func(a, b any) bool {
		if x, ok := parseNumber(a); ok {
			if y, ok := parseNumber(b); ok {
				switch {
				case x < y:
					return accept(-1)
				case x > y:
					return accept(1)
				}
				return accept(0)
			}
		}
		x, ok1 := a.(string)
		y, ok2 := b.(string)
		if !ok1 || !ok2 {
			return false
		}
		return accept(strings.Compare(x, y))
	}
}

func containsStrict(list []any, v any) bool {
	for _, item := range list {
		if strictEqual(item, v) {
			return true
		}
	}
	return false
}
