package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrRequestBodyTooLarge  = errors.New("request body too large")
	ErrNotAnObject          = errors.New("JSON request body is not an object")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrMissingRouteContext  = errors.New("missing chi route context")
)
