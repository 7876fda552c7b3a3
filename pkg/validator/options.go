package validator

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/formguard/pkg/config"
)

// Option configures a Validator.
type Option func(*Validator)

// WithStopOnError halts evaluation at the first failing rule spec.
func WithStopOnError(stop bool) Option {
	return func(v *Validator) { v.stopOnError = stop }
}

// WithAppendExistingItemsOnly sets the initial AppendExistingItemsOnly mode.
func WithAppendExistingItemsOnly(existing bool) Option {
	return func(v *Validator) { v.existing = existing }
}

// WithRegistry resolves rule types through r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.scope.registry = r
		}
	}
}

// WithLogger sets the logger used for rule failures and misconfiguration.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.scope.logger = l
		}
	}
}

// WithMaxDepth bounds composite nesting. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(v *Validator) {
		if depth > 0 {
			v.scope.maxDepth = depth
		}
	}
}

// WithMessages sets validator-wide message overrides, typically a language
// table from an i18n catalog. Per-spec messages still win.
func WithMessages(messages map[string]string) Option {
	return func(v *Validator) {
		if len(messages) > 0 {
			v.scope.messages = newMessageLayer(v.scope.messages, messages)
		}
	}
}

// Config holds environment-driven validator defaults.
type Config struct {
	StopOnError             bool   `env:"VALIDATOR_STOP_ON_ERROR" envDefault:"false"`
	AppendExistingItemsOnly bool   `env:"VALIDATOR_APPEND_EXISTING_ONLY" envDefault:"false"`
	MaxDepth                int    `env:"VALIDATOR_MAX_DEPTH" envDefault:"32"`
	Language                string `env:"VALIDATOR_LANGUAGE" envDefault:"en"`
}

// LoadConfig reads Config from the environment (and a .env file when
// present). With paths, the given .env files are read instead of the
// default one; variables set in the process environment still win.
func LoadConfig(paths ...string) (Config, error) {
	var (
		cfg Config
		err error
	)
	if len(paths) > 0 {
		err = config.LoadFiles(&cfg, paths...)
	} else {
		err = config.Load(&cfg)
	}
	if err != nil {
		return Config{}, errors.Join(ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// WithConfig applies cfg. Language is consumed by callers selecting a
// message catalog, not by the validator itself.
func WithConfig(cfg Config) Option {
	return func(v *Validator) {
		v.stopOnError = cfg.StopOnError
		v.existing = cfg.AppendExistingItemsOnly
		if cfg.MaxDepth > 0 {
			v.scope.maxDepth = cfg.MaxDepth
		}
	}
}
