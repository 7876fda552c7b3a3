package validator

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Reserved field names in decoded rule spec documents.
const (
	specFieldKey  = "key"
	specFieldType = "type"
)

// RuleSpec declares that the value under Key must satisfy the rule of Type
// configured with Params.
type RuleSpec struct {
	Key    any
	Type   RuleType
	Params Params
}

// Spec is a shorthand RuleSpec constructor.
func Spec(key any, typ RuleType, params Params) RuleSpec {
	return RuleSpec{Key: key, Type: typ, Params: params}
}

// NestedRule is an entry of a logical composite: a rule applied to the
// composite's own key and value.
type NestedRule struct {
	Type   RuleType
	Params Params
}

// Nested is a shorthand NestedRule constructor.
func Nested(typ RuleType, params Params) NestedRule {
	return NestedRule{Type: typ, Params: params}
}

// ParseSpecs converts a decoded document, a list of mappings holding "key",
// "type" and the rule params, into rule specs.
func ParseSpecs(raw []any) ([]RuleSpec, error) {
	specs := make([]RuleSpec, 0, len(raw))
	for i, item := range raw {
		fields, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("%w: entry %d must be a mapping, got %T", ErrInvalidSpec, i, item)
		}
		key, ok := fields[specFieldKey]
		if !ok || !isValidKey(key) {
			return nil, fmt.Errorf("%w: entry %d has no usable %q", ErrInvalidSpec, i, specFieldKey)
		}
		typ, ok := fields[specFieldType].(string)
		if !ok || typ == "" {
			return nil, fmt.Errorf("%w: entry %d has no %q", ErrInvalidSpec, i, specFieldType)
		}
		specs = append(specs, RuleSpec{
			Key:    key,
			Type:   RuleType(typ),
			Params: paramsFrom(fields, specFieldKey, specFieldType),
		})
	}
	return specs, nil
}

func parseNestedRules(raw []any) ([]NestedRule, error) {
	rules := make([]NestedRule, 0, len(raw))
	for i, item := range raw {
		if nested, ok := item.(NestedRule); ok {
			rules = append(rules, nested)
			continue
		}
		fields, ok := toStringMap(item)
		if !ok {
			return nil, fmt.Errorf("%w: nested rule %d must be a mapping, got %T", ErrInvalidSpec, i, item)
		}
		typ, ok := fields[specFieldType].(string)
		if !ok || typ == "" {
			return nil, fmt.Errorf("%w: nested rule %d has no %q", ErrInvalidSpec, i, specFieldType)
		}
		rules = append(rules, NestedRule{
			Type:   RuleType(typ),
			Params: paramsFrom(fields, specFieldType),
		})
	}
	return rules, nil
}

// LoadSpecs decodes a YAML or JSON rule spec document.
func LoadSpecs(r io.Reader) ([]RuleSpec, error) {
	var raw []any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrFailedToParseSpecs, err)
	}
	return ParseSpecs(raw)
}

// LoadSpecsFile reads and decodes a YAML or JSON rule spec file.
func LoadSpecsFile(path string) ([]RuleSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadSpecs, err)
	}
	return LoadSpecs(bytes.NewReader(content))
}

func paramsFrom(fields map[string]any, skip ...string) Params {
	params := make(Params, len(fields))
	for name, v := range fields {
		params[name] = v
	}
	for _, name := range skip {
		delete(params, name)
	}
	return params
}

func toStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Params:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			s, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[s] = val
		}
		return out, true
	}
	return nil, false
}
