package httpserver

import "errors"

// Run and Shutdown wrap these with the underlying cause.
var (
	ErrStart          = errors.New("httpserver: start failed")
	ErrAlreadyRunning = errors.New("httpserver: already running")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
)
