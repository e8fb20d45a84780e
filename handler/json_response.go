package handler

import (
	"encoding/json"
	"net/http"
)

// FieldError is a single field failure in an error envelope.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is the JSON envelope written for every failed request.
type ErrorBody struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    string       `json:"code"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status  int
	headers http.Header
	body    any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range j.headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.Header().Set("Content-Type", "application/json")
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

// WithJSONHeader adds a response header.
func WithJSONHeader(key, value string) JSONOption {
	return func(r *jsonResponse) {
		r.headers.Add(key, value)
	}
}

// WithSecurityHeaders sets nosniff and frame denial headers.
func WithSecurityHeaders() JSONOption {
	return func(r *jsonResponse) {
		r.headers.Set("X-Content-Type-Options", "nosniff")
		r.headers.Set("X-Frame-Options", "DENY")
	}
}

// JSON creates a 200 response that encodes v as is.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status:  http.StatusOK,
		headers: make(http.Header),
		body:    v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError creates an error envelope response from an HTTPError.
// Field errors, when given, are included in the "errors" list in order.
func JSONError(httpErr HTTPError, fields []FieldError, opts ...JSONOption) Response {
	r := &jsonResponse{
		status:  httpErr.Code,
		headers: make(http.Header),
		body: ErrorBody{
			Success: false,
			Error:   httpErr.Message,
			Code:    httpErr.Key,
			Errors:  fields,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WriteJSONError renders an error envelope directly, for plain http.Handler code paths.
func WriteJSONError(w http.ResponseWriter, r *http.Request, httpErr HTTPError, opts ...JSONOption) error {
	return JSONError(httpErr, nil, opts...).Render(w, r)
}

// MethodNotAllowed returns a handler that answers 405 with the Allow header set.
func MethodNotAllowed(allowed ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := make([]JSONOption, 0, len(allowed))
		for _, m := range allowed {
			opts = append(opts, WithJSONHeader("Allow", m))
		}
		_ = WriteJSONError(w, r, ErrMethodNotAllowed, opts...)
	}
}

// NotFound answers 404 with the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = WriteJSONError(w, r, ErrNotFound)
}
