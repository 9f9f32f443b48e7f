package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mailvalid/mailvalid/pkg/binder"
	"github.com/mailvalid/mailvalid/pkg/record"
)

// CodeValidationFailed is the error code of 422 responses.
const CodeValidationFailed = "validation_failed"

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// WithErrorMessage replaces the error message, e.g. with a translated one.
func WithErrorMessage(message string) JSONOption {
	return func(r *jsonResponse) {
		if r.body.Error != nil && message != "" {
			r.body.Error.Message = message
		}
	}
}

// JSON creates a 200 response carrying v as data. Errors are rendered as
// with JSONError.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{}
	r.body.Error, r.status = errorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StatusCode returns the HTTP status err renders with.
func StatusCode(err error) int {
	_, status := errorToDetail(err)
	return status
}

func errorToDetail(err error) (*ErrorDetail, int) {
	var errs record.Errors
	if errors.As(err, &errs) {
		return &ErrorDetail{
			Code:    CodeValidationFailed,
			Message: errs.Error(),
			Details: errs.All(),
		}, http.StatusUnprocessableEntity
	}

	httpErr := ErrInternalServerError
	switch {
	case errors.As(err, &httpErr):
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		httpErr = ErrUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		httpErr = ErrRequestEntityTooLarge
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}, ErrBadRequest.Code
	default:
		httpErr = ErrInternalServerError
	}

	return &ErrorDetail{
		Code:    httpErr.Key,
		Message: http.StatusText(httpErr.Code),
	}, httpErr.Code
}
