package validator

import "reflect"

// Context is the mapping of input values under validation. Keys are either
// strings or integers and are compared with Go equality, so "0" and 0 are
// distinct keys and so are int(0) and int64(0).
type Context map[any]any

// FromMap converts a string-keyed map, such as a decoded JSON object, into a Context.
func FromMap[V any](m map[string]V) Context {
	ctx := make(Context, len(m))
	for k, v := range m {
		ctx[k] = v
	}
	return ctx
}

// FromSlice builds a Context keyed by element index.
func FromSlice[V any](s []V) Context {
	ctx := make(Context, len(s))
	for i, v := range s {
		ctx[i] = v
	}
	return ctx
}

// AsContext reports whether v is a mapping usable as a Context and returns it.
// Supported shapes are Context, map[string]any, map[any]any and map[int]any.
func AsContext(v any) (Context, bool) {
	switch m := v.(type) {
	case Context:
		return m, true
	case map[any]any:
		return Context(m), true
	case map[string]any:
		return FromMap(m), true
	case map[int]any:
		ctx := make(Context, len(m))
		for k, val := range m {
			ctx[k] = val
		}
		return ctx, true
	case map[string]string:
		return FromMap(m), true
	}
	return nil, false
}

// Get returns the value stored under key, or nil when absent.
func (c Context) Get(key any) any {
	if !isValidKey(key) {
		return nil
	}
	return c[key]
}

// Has reports whether key is present, even with a nil value.
func (c Context) Has(key any) bool {
	if !isValidKey(key) {
		return false
	}
	_, ok := c[key]
	return ok
}

// Clone returns a shallow copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// isValidKey reports whether key is a string or an integer. Other
// comparable types are rejected too: arrays and structs holding interface
// fields pass the type check but panic when hashed.
func isValidKey(key any) bool {
	if key == nil {
		return false
	}
	switch reflect.TypeOf(key).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}
