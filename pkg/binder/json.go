package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/validator"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// JSON decodes a JSON object request body into a validator.Context. Numbers
// decode as float64 and nested objects as map[string]any, which the
// validator accepts as sub-contexts. Values are passed through untouched;
// cleaning is the job of the rules.
//
//	input, err := binder.JSON(r)
//	if err != nil {
//		http.Error(w, err.Error(), http.StatusBadRequest)
//		return
//	}
//	v := validator.New(input, specs)
func JSON(r *http.Request) (validator.Context, error) {
	if err := r.Context().Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	mt, err := mediaType(r)
	if err != nil {
		return nil, err
	}
	if mt != MIMEApplicationJSON {
		return nil, fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mt, MIMEApplicationJSON)
	}
	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrRequestBodyTooLarge, DefaultMaxJSONSize)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: invalid JSON at offset %d", ErrFailedToParseJSON, syntaxErr.Offset)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	object, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, decoded)
	}
	return validator.FromMap(object), nil
}
