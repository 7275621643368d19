package httpserver

import "errors"

var (
	// ErrStart indicates that the listener could not be opened or the server
	// stopped serving unexpectedly.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrAlreadyRunning is returned by Run when the server is already serving.
	ErrAlreadyRunning = errors.New("HTTP server already running")
	// ErrShutdown indicates that graceful shutdown failed.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
