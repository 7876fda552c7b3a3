package validator

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/formguard/pkg/logger"
)

// DefaultMaxDepth bounds composite nesting when no other limit is configured.
const DefaultMaxDepth = 32

// ScopedRule is implemented by composite rules that build nested rules or
// validators. The orchestrator binds a Scope before calling Validate.
type ScopedRule interface {
	Rule
	BindScope(Scope)
}

// Scope is the environment a rule is built in: the registry used to resolve
// nested rule types, validator-wide message overrides, the logger and the
// current nesting depth.
type Scope struct {
	registry *Registry
	logger   *slog.Logger
	messages Messages
	depth    int
	maxDepth int
}

func defaultScope() Scope {
	return Scope{
		registry: DefaultRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxDepth: DefaultMaxDepth,
	}
}

func (s Scope) Depth() int { return s.depth }

func (s Scope) MaxDepth() int { return s.maxDepth }

func (s Scope) Registry() *Registry { return s.registry }

func (s Scope) Logger() *slog.Logger { return s.logger }

func (s Scope) child() Scope {
	s.depth++
	return s
}

func (s Scope) isZero() bool { return s.registry == nil }

// Build resolves typ and constructs the rule for (key, value, params). It
// never returns nil: unknown types, unusable keys and excessive nesting yield
// rules that always fail with UNKNOWN_RULE, INVALID_KEY and MAX_DEPTH.
func (s Scope) Build(key, value any, typ RuleType, params Params) Rule {
	if s.isZero() {
		s = defaultScope()
	}
	if !isValidKey(key) {
		return newFailedRule(key, value, CodeInvalidKey, nil)
	}
	if s.depth > s.maxDepth {
		s.logger.Warn("rule nesting too deep",
			logger.Component("validator"),
			logger.RuleKey(key),
			logger.RuleType(string(typ)),
			slog.Int("max_depth", s.maxDepth),
		)
		return newFailedRule(key, value, CodeMaxDepth, map[string]string{"depth": strconv.Itoa(s.maxDepth)})
	}

	c, ok := s.registry.Lookup(typ)
	if !ok {
		s.logger.Warn("unknown rule type",
			logger.Component("validator"),
			logger.RuleKey(key),
			logger.RuleType(string(typ)),
		)
		return newFailedRule(key, value, CodeUnknown, map[string]string{"type": string(typ)})
	}

	if len(s.messages) > 0 {
		params = params.With(ParamMessages, newMessageLayer(s.messages, params.Messages()))
	}

	rule := c(key, value, params)
	if scoped, ok := rule.(ScopedRule); ok {
		scoped.BindScope(s.child())
	}
	return rule
}

// NewValidator returns an orchestrator nested in this scope. It shares the
// registry, message overrides and logger, one level deeper.
func (s Scope) NewValidator(ctx Context, specs []RuleSpec, opts ...Option) *Validator {
	if s.isZero() {
		s = defaultScope()
	}
	v := New(ctx, specs, opts...)
	v.scope = s
	return v
}

// newMessageLayer merges validator-wide overrides below spec overrides.
func newMessageLayer(global, local Messages) Messages {
	out := make(Messages, len(global)+len(local))
	for code, tmpl := range global {
		out[code] = tmpl
	}
	for code, tmpl := range local {
		out[code] = tmpl
	}
	return out
}

// failedRule stands in for a rule that could not be built.
type failedRule struct {
	Base
	code         string
	placeholders map[string]string
}

func newFailedRule(key, value any, code string, placeholders map[string]string) *failedRule {
	return &failedRule{
		Base:         NewBase(key, value, nil, nil, WithTrimDefault(false)),
		code:         code,
		placeholders: placeholders,
	}
}

func (r *failedRule) Validate() Outcome {
	return r.Fail(r.code, r.placeholders)
}
