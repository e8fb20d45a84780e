package handler

import "net/http"

// HTTPError is a client-facing error with a status code, a stable machine
// readable Key and a generic Message that is safe to expose.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // Response code, e.g. "INVALID_JSON"
	Message string // Human readable message
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

var (
	ErrInvalidJSON         = HTTPError{Code: http.StatusBadRequest, Key: "INVALID_JSON", Message: "Invalid JSON body"}
	ErrValidation          = HTTPError{Code: http.StatusBadRequest, Key: "VALIDATION_ERROR", Message: "Validation failed"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "NOT_FOUND", Message: "Not found"}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Key: "METHOD_NOT_ALLOWED", Message: "Method not allowed"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "SERVER_ERROR", Message: "Internal server error"}
)
