package guard

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/i18n"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// BindFunc extracts the input of a request as a validator Context.
type BindFunc func(r *http.Request) (validator.Context, error)

// ErrorHandler answers a request whose input could not be bound or validated.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Guard validates request input against a fixed list of rule specs. It is
// safe for concurrent use: every request gets its own Validator.
type Guard struct {
	specs        []validator.RuleSpec
	bind         BindFunc
	catalog      *i18n.Catalog
	logger       *slog.Logger
	errorHandler ErrorHandler
	validatorOps []validator.Option
}

// Option configures a Guard.
type Option func(*Guard)

// WithBinder replaces binder.Request as the input extractor.
func WithBinder(b BindFunc) Option {
	return func(g *Guard) {
		if b != nil {
			g.bind = b
		}
	}
}

// WithCatalog renders messages in the request language. The language is
// taken from the request context (i18n.Middleware) and falls back to the
// Accept-Language header.
func WithCatalog(c *i18n.Catalog) Option {
	return func(g *Guard) { g.catalog = c }
}

// WithLogger sets the logger passed to validators and used for failures.
// If not specified, a discard logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithErrorHandler replaces the default JSON error answer.
func WithErrorHandler(h ErrorHandler) Option {
	return func(g *Guard) {
		if h != nil {
			g.errorHandler = h
		}
	}
}

// WithValidatorOptions adds options to every Validator the Guard creates.
func WithValidatorOptions(opts ...validator.Option) Option {
	return func(g *Guard) {
		g.validatorOps = append(g.validatorOps, opts...)
	}
}

// New creates a Guard for specs.
func New(specs []validator.RuleSpec, opts ...Option) *Guard {
	g := &Guard{
		specs:  specs,
		bind:   binder.Request,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.errorHandler == nil {
		g.errorHandler = g.defaultErrorHandler
	}
	return g
}

// Check binds and validates r. It returns the validated context, or
// validator.ValidationErrors when a rule failed, or the binding error.
func (g *Guard) Check(r *http.Request) (validator.Context, error) {
	input, err := g.bind(r)
	if err != nil {
		return nil, err
	}

	opts := make([]validator.Option, 0, len(g.validatorOps)+2)
	opts = append(opts, validator.WithLogger(g.logger))
	if g.catalog != nil {
		opts = append(opts, validator.WithMessages(g.messages(r)))
	}
	opts = append(opts, g.validatorOps...)

	return validator.Check(input, g.specs, opts...)
}

func (g *Guard) messages(r *http.Request) map[string]string {
	if locale, ok := i18n.LocaleFromContext(r.Context()); ok {
		return g.catalog.Messages(locale)
	}
	return g.catalog.MessagesFor(r.Header.Get("Accept-Language"))
}

// Middleware validates every request before next. The validated context is
// available to next through Validated.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		validated, err := g.Check(r)
		if err != nil {
			g.errorHandler(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(SetValidated(r.Context(), validated)))
	})
}

// Handler is Middleware for a handler that receives the validated context
// directly.
func (g *Guard) Handler(fn func(w http.ResponseWriter, r *http.Request, validated validator.Context)) http.Handler {
	return g.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, MustValidated(r.Context()))
	}))
}

func (g *Guard) defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := ErrorToDetail(err)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	g.logger.Log(r.Context(), level, "request rejected",
		logger.Component("guard"),
		slog.Int("status", status),
		slog.String("path", r.URL.Path),
		logger.Error(err),
	)

	if werr := WriteJSON(w, status, JSONResponse{Error: detail}); werr != nil {
		g.logger.Error("failed to write error response", logger.Component("guard"), logger.Error(werr))
	}
}
