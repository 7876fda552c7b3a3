package binder

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// Form reads an application/x-www-form-urlencoded or multipart/form-data
// body into a validator.Context. A field sent once becomes a string, a
// repeated field becomes a []any of strings. Query string values and
// uploaded files are not included.
func Form(r *http.Request) (validator.Context, error) {
	mt, err := mediaType(r)
	if err != nil {
		return nil, err
	}

	switch mt {
	case MIMEApplicationForm:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return fromValues(r.PostForm), nil
	case MIMEMultipartForm:
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
		}
		return fromValues(r.MultipartForm.Value), nil
	default:
		return nil, fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mt, MIMEApplicationForm, MIMEMultipartForm)
	}
}

// Query reads the URL query string into a validator.Context with the same
// single/repeated value shapes as Form.
func Query(r *http.Request) validator.Context {
	return fromValues(r.URL.Query())
}

func fromValues(values url.Values) validator.Context {
	ctx := make(validator.Context, len(values))
	for key, vals := range values {
		switch len(vals) {
		case 0:
			continue
		case 1:
			ctx[key] = vals[0]
		default:
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			ctx[key] = list
		}
	}
	return ctx
}
