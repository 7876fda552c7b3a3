package validator

import (
	"sort"
	"sync"
)

// RuleType identifies a rule constructor in a Registry.
type RuleType string

// Built-in rule types.
const (
	TypeString        RuleType = "string"
	TypeStringCleaner RuleType = "string_cleaner"
	TypeNumeric       RuleType = "numeric"
	TypeRange         RuleType = "range"
	TypeChoices       RuleType = "choices"
	TypeCompare       RuleType = "compare"
	TypeMatch         RuleType = "match"
	TypeEmail         RuleType = "email"
	TypeIP            RuleType = "ip"
	TypeJSON          RuleType = "json"
	TypeBoolean       RuleType = "boolean"
	TypeArray         RuleType = "array"
	TypeDate          RuleType = "date"
	TypeUUID          RuleType = "uuid"
	TypeAnd           RuleType = "and"
	TypeOr            RuleType = "or"
	TypeCollection    RuleType = "collection"
)

// Registry maps rule types to constructors. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[RuleType]Constructor
}

// NewRegistry returns a registry holding every built-in rule.
func NewRegistry() *Registry {
	r := &Registry{rules: make(map[RuleType]Constructor)}
	r.Register(TypeString, NewStringRule)
	r.Register(TypeStringCleaner, NewStringCleanerRule)
	r.Register(TypeNumeric, NewNumericRule)
	r.Register(TypeRange, NewRangeRule)
	r.Register(TypeChoices, NewChoicesRule)
	r.Register(TypeCompare, NewCompareRule)
	r.Register(TypeMatch, NewMatchRule)
	r.Register(TypeEmail, NewEmailRule)
	r.Register(TypeIP, NewIPRule)
	r.Register(TypeJSON, NewJSONRule)
	r.Register(TypeBoolean, NewBooleanRule)
	r.Register(TypeArray, NewArrayRule)
	r.Register(TypeDate, NewDateRule)
	r.Register(TypeUUID, NewUUIDRule)
	r.Register(TypeAnd, NewAndRule)
	r.Register(TypeOr, NewOrRule)
	r.Register(TypeCollection, NewCollectionRule)
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the shared registry used when a Validator is built
// without WithRegistry.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds or replaces the constructor for typ. Nil constructors are ignored.
func (r *Registry) Register(typ RuleType, c Constructor) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[typ] = c
}

// Lookup returns the constructor registered for typ.
func (r *Registry) Lookup(typ RuleType) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.rules[typ]
	return c, ok
}

// Types lists the registered rule types in lexical order.
func (r *Registry) Types() []RuleType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]RuleType, 0, len(r.rules))
	for typ := range r.rules {
		types = append(types, typ)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
