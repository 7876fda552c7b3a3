package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formguard/pkg/i18n"
)

func TestLocaleContext(t *testing.T) {
	t.Parallel()

	t.Run("sets and reads locale", func(t *testing.T) {
		t.Parallel()
		ctx := i18n.SetLocale(context.Background(), "fr")

		assert.Equal(t, "fr", i18n.GetLocale(ctx))
		locale, ok := i18n.LocaleFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "fr", locale)
	})

	t.Run("returns default when unset", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, i18n.DefaultLanguage, i18n.GetLocale(context.Background()))
		_, ok := i18n.LocaleFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("logger extractor", func(t *testing.T) {
		t.Parallel()
		extract := i18n.LoggerExtractor()

		attr, ok := extract(i18n.SetLocale(context.Background(), "de"))
		assert.True(t, ok)
		assert.Equal(t, "lang", attr.Key)
		assert.Equal(t, "de", attr.Value.String())

		_, ok = extract(context.Background())
		assert.False(t, ok)
	})
}

func TestDefaultLangExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     []i18n.ExtractorOption
		setup    func(*http.Request)
		target   string
		expected string
	}{
		{
			name:     "cookie wins over query",
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "DE"}) },
			target:   "/?lang=fr",
			expected: "de",
		},
		{
			name:     "query parameter",
			target:   "/?lang=fr",
			expected: "fr",
		},
		{
			name:     "language header",
			setup:    func(r *http.Request) { r.Header.Set("Language", " es ") },
			target:   "/",
			expected: "es",
		},
		{
			name:     "custom cookie name",
			opts:     []i18n.ExtractorOption{i18n.WithCookieName("locale")},
			setup:    func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "locale", Value: "it"}) },
			target:   "/",
			expected: "it",
		},
		{
			name:     "custom query name",
			opts:     []i18n.ExtractorOption{i18n.WithQueryParamName("locale")},
			target:   "/?locale=pl&lang=fr",
			expected: "pl",
		},
		{
			name:     "oversized code ignored",
			target:   "/?lang=" + "abcdefghijklmnopqrstuvwxyzabcdefghijkl",
			expected: "",
		},
		{
			name:     "accept language is not used",
			setup:    func(r *http.Request) { r.Header.Set("Accept-Language", "de") },
			target:   "/",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.setup != nil {
				tt.setup(req)
			}

			assert.Equal(t, tt.expected, i18n.DefaultLangExtractor(tt.opts...)(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()
	catalog := newTestCatalog(t)

	serve := func(req *http.Request, extr i18n.LangExtractor) (string, string) {
		var locale, required string
		handler := i18n.Middleware(catalog, extr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale = i18n.GetLocale(r.Context())
			required = catalog.MessagesFromContext(r.Context())["REQUIRED"]
		}))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		return locale, required
	}

	t.Run("negotiates accept language", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9")

		locale, required := serve(req, nil)
		assert.Equal(t, "de", locale)
		assert.Equal(t, "%key% ist erforderlich", required)
	})

	t.Run("explicit language wins", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lang=pt-br", nil)
		req.Header.Set("Accept-Language", "de")

		locale, _ := serve(req, nil)
		assert.Equal(t, "pt-BR", locale)
	})

	t.Run("falls back to default", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?lang=ja", nil)

		locale, required := serve(req, nil)
		assert.Equal(t, "en", locale)
		assert.Equal(t, "%key% is required", required)
	})

	t.Run("custom extractor", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		locale, _ := serve(req, func(*http.Request) string { return "de" })
		assert.Equal(t, "de", locale)
	})
}
