package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no other default is configured.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the Accept-Language header that is parsed.
const maxAcceptLanguageLength = 4096

// Catalog holds validator message tables per language and picks the best
// table for a requested language. It is immutable after NewCatalog and safe
// for concurrent use.
type Catalog struct {
	messages    Translations
	langs       []string // langs[i] is the catalog key of tags[i]
	tags        []language.Tag
	matcher     language.Matcher
	defaultLang string
	logger      *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when nothing better matches.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger sets the logger used for load diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCatalog loads translations through adapter and builds the language
// matcher. Languages whose key is not a valid BCP 47 tag are skipped.
func NewCatalog(ctx context.Context, adapter Adapter, opts ...Option) (*Catalog, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	c := &Catalog{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, err)
	}

	c.messages = make(Translations, len(translations))
	for lang, table := range translations {
		if _, err := language.Parse(lang); err != nil {
			c.logger.WarnContext(ctx, "skipping translations with invalid language tag",
				slog.String("component", "i18n"),
				slog.String("language", lang),
				slog.String("error", err.Error()),
			)
			continue
		}
		c.messages[lang] = table
	}

	if _, ok := c.messages[c.defaultLang]; !ok {
		c.messages[c.defaultLang] = map[string]string{}
	}

	// The default language goes first: the matcher falls back to index 0.
	keys := slices.Sorted(maps.Keys(c.messages))
	c.langs = append([]string{c.defaultLang}, slices.DeleteFunc(keys, func(k string) bool {
		return k == c.defaultLang
	})...)
	c.tags = make([]language.Tag, len(c.langs))
	for i, lang := range c.langs {
		c.tags[i] = language.Make(lang)
	}
	c.matcher = language.NewMatcher(c.tags)

	c.logger.DebugContext(ctx, "message catalog loaded",
		slog.String("component", "i18n"),
		slog.Any("languages", c.langs),
		slog.String("default_language", c.defaultLang),
	)

	return c, nil
}

// DefaultLanguage returns the fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the catalog languages, default first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// Has reports whether lang is present in the catalog as is.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.messages[lang]
	return ok
}

// Match returns the catalog language that best serves lang. Unknown or
// malformed tags resolve to the default language.
func (c *Catalog) Match(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return c.defaultLang
	}
	return c.match(tag)
}

// MatchAcceptLanguage returns the catalog language that best serves an
// Accept-Language header value.
func (c *Catalog) MatchAcceptLanguage(header string) string {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	return c.match(tags...)
}

func (c *Catalog) match(tags ...language.Tag) string {
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(c.langs) {
		return c.defaultLang
	}
	return c.langs[idx]
}

// Messages returns the message table for the best match of lang, layered
// over the default language table. The result is a fresh map and can be
// passed to validator.WithMessages.
func (c *Catalog) Messages(lang string) map[string]string {
	return c.table(c.Match(lang))
}

// MessagesFor is Messages for an Accept-Language header value.
func (c *Catalog) MessagesFor(acceptLanguage string) map[string]string {
	return c.table(c.MatchAcceptLanguage(acceptLanguage))
}

// MessagesFromContext returns the table for the language stored in ctx by
// Middleware or SetLocale, or the default table when none is stored.
func (c *Catalog) MessagesFromContext(ctx context.Context) map[string]string {
	if locale, ok := LocaleFromContext(ctx); ok {
		return c.Messages(locale)
	}
	return c.table(c.defaultLang)
}

// Lookup returns the exact template for code in lang, without fallback.
func (c *Catalog) Lookup(lang, code string) (string, error) {
	table, ok := c.messages[lang]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLanguageNotSupported, lang)
	}
	tmpl, ok := table[code]
	if !ok {
		return "", fmt.Errorf("message %q not found for language %s", code, lang)
	}
	return tmpl, nil
}

func (c *Catalog) table(lang string) map[string]string {
	result := maps.Clone(c.messages[c.defaultLang])
	if result == nil {
		result = make(map[string]string)
	}
	if lang != c.defaultLang {
		maps.Copy(result, c.messages[lang])
	}
	return result
}
