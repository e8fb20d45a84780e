package handler

import "errors"

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrPanic wraps a value recovered from a panicking handler
	ErrPanic = errors.New("handler panicked")
)
