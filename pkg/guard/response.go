package guard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/formguard/pkg/binder"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Error codes written to ErrorDetail.Code.
const (
	CodeValidation           = "validation_error"
	CodeBadRequest           = "bad_request"
	CodeRequestTooLarge      = "request_too_large"
	CodeUnsupportedMediaType = "unsupported_media_type"
	CodeInternal             = "internal_error"
)

// JSONResponse is the envelope written for every guard response.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains error information. Details maps a field to its
// rendered messages in evaluation order.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// WriteJSON renders body with status.
func WriteJSON(w http.ResponseWriter, status int, body JSONResponse) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// ErrorToDetail classifies err and returns the HTTP status to answer with.
func ErrorToDetail(err error) (int, *ErrorDetail) {
	if errs := validator.ExtractValidationErrors(err); errs != nil {
		detail := &ErrorDetail{
			Code:    CodeValidation,
			Message: "Validation failed",
		}
		if len(errs) > 0 {
			detail.Details = make(map[string][]string, len(errs))
			for _, e := range errs {
				detail.Details[e.Field] = append(detail.Details[e.Field], e.Message)
			}
		}
		return http.StatusUnprocessableEntity, detail
	}

	switch {
	case errors.Is(err, binder.ErrRequestBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: CodeRequestTooLarge, Message: err.Error()}
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: CodeUnsupportedMediaType, Message: err.Error()}
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrNotAnObject),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrMissingContentType):
		return http.StatusBadRequest, &ErrorDetail{Code: CodeBadRequest, Message: err.Error()}
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternal,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
