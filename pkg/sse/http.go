package sse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
)

// HTTPTransport opens event streams over HTTP.
type HTTPTransport struct {
	client *http.Client
	path   string
	header http.Header
}

// NewHTTPTransport creates a transport. The default client carries a cookie
// jar so session cookies accompany the bearer token.
func NewHTTPTransport(opts ...Option) *HTTPTransport {
	jar, _ := cookiejar.New(nil)
	t := &HTTPTransport{
		client: &http.Client{Jar: jar},
		path:   StreamPath,
		header: http.Header{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// URL returns the stream endpoint for baseURL.
func (t *HTTPTransport) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + t.path
}

// Open connects and returns once response headers have been validated.
// Canceling ctx closes the stream.
func (t *HTTPTransport) Open(ctx context.Context, r Request) (Stream, error) {
	ctx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.URL(r.BaseURL), nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("sse: create request: %w", err)
	}
	for k, vs := range t.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	if r.Token != "" {
		req.Header.Set("Authorization", "Bearer "+r.Token)
	}
	if r.LastEventID != "" {
		req.Header.Set("Last-Event-ID", r.LastEventID)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("sse: connect: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "text/event-stream" {
		_ = resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedContentType, resp.Header.Get("Content-Type"))
	}

	s := &httpStream{
		ctx:    ctx,
		cancel: cancel,
		body:   resp.Body,
		events: make(chan Event),
	}
	go s.run()
	return s, nil
}

type httpStream struct {
	ctx    context.Context
	cancel context.CancelFunc
	body   io.ReadCloser
	events chan Event

	mu     sync.Mutex
	err    error
	closed bool
}

func (s *httpStream) run() {
	defer close(s.events)
	defer s.body.Close()

	dec := NewDecoder(s.body)
	for {
		ev, err := dec.Next()
		if err != nil {
			s.finish(err)
			return
		}
		select {
		case s.events <- ev:
		case <-s.ctx.Done():
			s.finish(s.ctx.Err())
			return
		}
	}
}

func (s *httpStream) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		s.err = nil
	case errors.Is(err, io.EOF):
		s.err = ErrStreamClosed
	default:
		s.err = err
	}
}

func (s *httpStream) Events() <-chan Event {
	return s.events
}

func (s *httpStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *httpStream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	return nil
}
