// Package validator checks a mapping of named input values against an
// ordered list of declarative rule specs, producing the subset of accepted
// values and an ordered list of human-readable errors.
//
// # Architecture
//
// Every rule embeds Base, which trims string values, runs the shared
// empty/required short-circuit and renders error messages from a per-rule
// table of code → template. A concrete rule only supplies its own predicate
// through Base.Run:
//
//	func (r *MyRule) Validate() validator.Outcome {
//	    return r.Run(func() validator.Outcome {
//	        if !ok(r.Value()) {
//	            return r.Fail("INVALID_MINE", nil)
//	        }
//	        return validator.Valid
//	    })
//	}
//
// Rules are referenced by RuleType through a Registry, so rule specs can be
// declared in Go or decoded from YAML/JSON with LoadSpecs. Composite rules
// build on the same contract:
//   - and        – passes when every nested rule passes, reports the first failure
//   - or         – passes when any nested rule passes, reports every failure
//   - collection – validates each element of a sequence of sub-mappings with
//     a nested Validator
//
// Composite nesting is bounded (DefaultMaxDepth, WithMaxDepth), so a
// self-referential rule spec fails with MAX_DEPTH instead of recursing forever.
//
// # Concurrency
//
// A Validator is not safe for concurrent use. Rule specs are read-only and
// may be shared between validators. Two pieces of process-wide state exist,
// both guarded by locks: the default Registry and a bounded LRU of compiled
// match patterns. The cache memoizes pattern compilation, failures included,
// and never affects an outcome.
//
// # Usage
//
//	v := validator.New(validator.Context{"age": 25, "name": "Ben "}, []validator.RuleSpec{
//	    validator.Spec("age", validator.TypeNumeric, validator.Params{"min": 5, "max": 65}),
//	    validator.Spec("name", validator.TypeString, validator.Params{"min": 3, "max": 30}),
//	})
//	if !v.Validate() {
//	    log.Println(v.ImplodedErrors("; "))
//	}
//	clean := v.ValidatedContext() // {"age": 25, "name": "Ben"}
//
// # Messages
//
// Each rule owns default templates. Validator-wide overrides (WithMessages,
// typically a language table from the i18n package) replace them, and the
// "messages" param of a single spec replaces both.
//
// # Error Handling
//
// A failing rule is an ordinary Invalid outcome, never a panic or a Go
// error. Validator.Err exposes the failures as ValidationErrors, which
// carries the error code in TranslationKey and the placeholders in
// TranslationValues. Unknown rule types and unusable keys fail with
// UNKNOWN_RULE and INVALID_KEY.
package validator
