package binder

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Merge combines contexts into a new one. Later contexts win on key
// collisions.
func Merge(ctxs ...validator.Context) validator.Context {
	size := 0
	for _, c := range ctxs {
		size += len(c)
	}
	out := make(validator.Context, size)
	for _, c := range ctxs {
		for k, v := range c {
			out[k] = v
		}
	}
	return out
}

// Request gathers every input of r into one Context: query string, then the
// body (JSON or form, by content type, when the request has one), then chi
// URL parameters when the request was routed by chi.
func Request(r *http.Request) (validator.Context, error) {
	parts := []validator.Context{Query(r)}

	if r.Body != nil && r.Body != http.NoBody && r.Header.Get("Content-Type") != "" {
		var (
			body validator.Context
			err  error
		)
		if mt, _ := mediaType(r); mt == MIMEApplicationJSON {
			body, err = JSON(r)
		} else {
			body, err = Form(r)
		}
		if err != nil {
			return nil, err
		}
		parts = append(parts, body)
	}

	if chi.RouteContext(r.Context()) != nil {
		params, err := ChiParams(r)
		if err != nil {
			return nil, err
		}
		parts = append(parts, params)
	}

	return Merge(parts...), nil
}
