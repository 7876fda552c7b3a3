package i18n

import (
	"net/http"
)

// Middleware resolves the request language against the catalog and stores
// the matched catalog language in the request context, where
// Catalog.MessagesFromContext and GetLocale pick it up.
//
// A language named by extr (cookie or query parameter by default) wins;
// otherwise the Accept-Language header is negotiated. Requests that name
// nothing usable get the catalog default.
func Middleware(c *Catalog, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string
			if requested := extr(r); requested != "" {
				lang = c.Match(requested)
			} else {
				lang = c.MatchAcceptLanguage(r.Header.Get("Accept-Language"))
			}

			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
