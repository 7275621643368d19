package sse

import "net/http"

// Option configures an HTTPTransport.
type Option func(*HTTPTransport)

// WithHTTPClient replaces the HTTP client. The client should not set a
// Timeout, which would cut long-lived streams.
func WithHTTPClient(c *http.Client) Option {
	return func(t *HTTPTransport) {
		if c != nil {
			t.client = c
		}
	}
}

// WithPath overrides StreamPath.
func WithPath(path string) Option {
	return func(t *HTTPTransport) {
		if path != "" {
			t.path = path
		}
	}
}

// WithHeader adds a header to every stream request.
func WithHeader(key, value string) Option {
	return func(t *HTTPTransport) {
		t.header.Set(key, value)
	}
}
