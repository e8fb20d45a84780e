// Package handler provides type-safe HTTP handlers that return Response values
// instead of writing to http.ResponseWriter directly.
//
// Wrap turns a HandlerFunc into an http.HandlerFunc. It runs the configured
// binders, applies decorators, renders the returned Response and routes every
// failure to an ErrorHandler, including panics raised by the handler.
//
// # Responses
//
// JSON encodes any value with status and header options. JSONError renders
// the shared error envelope:
//
//	{"success": false, "error": "Validation failed", "code": "VALIDATION_ERROR",
//	 "errors": [{"field": "name", "message": "..."}]}
//
// # Errors
//
// NewErrorHandler classifies errors as follows:
//   - validator.ValidationErrors: 400 VALIDATION_ERROR with the ordered field list
//   - binder.ErrInvalidJSON or binder.ErrUnsupportedMediaType: 400 INVALID_JSON
//   - HTTPError: its own status, key and message
//   - anything else: 500 SERVER_ERROR with a generic message
//
// The original error is only ever written to the log.
package handler
