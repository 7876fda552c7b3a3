// Package sanitizer provides the string cleaning primitives used while
// validating input: trimming (including NUL bytes), control character and
// backtick removal, percent-decoding and HTML tag stripping.
//
// All helpers are pure func(string) string values and can be chained with
// Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.PercentDecode,
//	    sanitizer.RemoveControlChars,
//	    sanitizer.StripTags,
//	    sanitizer.TrimBlank,
//	)
//	name := clean("%7FPeter<b> </b>") // "Peter"
//
// Tag stripping relies on bluemonday's strict policy.
package sanitizer
