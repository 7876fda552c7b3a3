package i18n

import (
	"net/http"
	"strings"
)

// maxLangCodeLength is the maximum accepted length of an explicit language
// code (RFC 5646 recommends 35 characters).
const maxLangCodeLength = 35

// ExtractorConfig holds configuration for the language extractor
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the language extractor
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie name to check for language preference
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter name to check for language
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultLangExtractor checks, in order, a cookie and a query parameter
// (both named "lang" by default) and the non-standard Language header. It
// returns an empty string when none carries a usable code; the
// Accept-Language header is left to Middleware.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	config := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(config)
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(config.CookieName); err == nil {
			if lang := normalizeLang(cookie.Value); lang != "" {
				return lang
			}
		}

		if lang := normalizeLang(r.URL.Query().Get(config.QueryParamName)); lang != "" {
			return lang
		}

		return normalizeLang(r.Header.Get("Language"))
	}
}

func normalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(lang) > maxLangCodeLength {
		return ""
	}
	return strings.ToLower(lang)
}
