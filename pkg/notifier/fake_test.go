package notifier_test

import (
	"context"
	"sync"

	"github.com/dmitrymomot/notifystream/pkg/sse"
)

type openResult struct {
	err   error
	block chan struct{}
}

type fakeTransport struct {
	mu       sync.Mutex
	results  []openResult
	requests []sse.Request
	streams  []*fakeStream
}

func newFakeTransport(results ...openResult) *fakeTransport {
	return &fakeTransport{results: results}
}

func (f *fakeTransport) Open(ctx context.Context, req sse.Request) (sse.Stream, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	var res openResult
	if len(f.results) > 0 {
		res = f.results[0]
		f.results = f.results[1:]
	}
	f.mu.Unlock()

	if res.block != nil {
		<-res.block
	}
	if res.err != nil {
		return nil, res.err
	}

	s := &fakeStream{events: make(chan sse.Event, 16)}
	f.mu.Lock()
	f.streams = append(f.streams, s)
	f.mu.Unlock()
	return s, nil
}

func (f *fakeTransport) opens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeTransport) request(i int) sse.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[i]
}

func (f *fakeTransport) stream(i int) *fakeStream {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i >= len(f.streams) {
		return nil
	}
	return f.streams[i]
}

type fakeStream struct {
	events chan sse.Event
	once   sync.Once

	mu     sync.Mutex
	err    error
	closed bool
}

func (s *fakeStream) Events() <-chan sse.Event {
	return s.events
}

func (s *fakeStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *fakeStream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.once.Do(func() { close(s.events) })
	return nil
}

func (s *fakeStream) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *fakeStream) send(ev sse.Event) {
	s.events <- ev
}

// fail ends the stream as if the server dropped it.
func (s *fakeStream) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.once.Do(func() { close(s.events) })
}
