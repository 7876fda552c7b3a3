package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Path collects the named path parameters through extractor, so any router
// can be plugged in. Parameters with an empty value are left out.
//
//	input := binder.Path(r, chi.URLParam, "id", "slug")
func Path(r *http.Request, extractor func(r *http.Request, name string) string, names ...string) validator.Context {
	ctx := make(validator.Context, len(names))
	if extractor == nil {
		return ctx
	}
	for _, name := range names {
		if value := extractor(r, name); value != "" {
			ctx[name] = value
		}
	}
	return ctx
}

// ChiParams collects every URL parameter of the matched chi route.
func ChiParams(r *http.Request) (validator.Context, error) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return nil, ErrMissingRouteContext
	}

	ctx := make(validator.Context, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "" || i >= len(rctx.URLParams.Values) {
			continue
		}
		ctx[key] = rctx.URLParams.Values[i]
	}
	return ctx, nil
}
