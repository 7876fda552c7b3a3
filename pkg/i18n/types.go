package i18n

import "net/http"

// LangExtractor returns the language requested by r, or an empty string
// when the request does not name one.
type LangExtractor func(r *http.Request) string
