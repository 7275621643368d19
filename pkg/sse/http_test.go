package sse_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifystream/pkg/sse"
)

func eventStream(t *testing.T, fn func(w http.ResponseWriter, r *http.Request, flush func())) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		flusher, _ := w.(http.Flusher)
		fn(w, r, func() {
			if flusher != nil {
				flusher.Flush()
			}
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPTransport_Open(t *testing.T) {
	t.Parallel()

	headers := make(chan http.Header, 1)
	srv := eventStream(t, func(w http.ResponseWriter, r *http.Request, flush func()) {
		assert.Equal(t, sse.StreamPath, r.URL.Path)
		headers <- r.Header.Clone()
		fmt.Fprint(w, "event: init\ndata: hello\n\n")
		fmt.Fprint(w, "id: 42\nevent: notification\ndata: {\"message\":\"m\"}\n\n")
		flush()
	})

	tr := sse.NewHTTPTransport()
	stream, err := tr.Open(context.Background(), sse.Request{
		BaseURL:     srv.URL + "/",
		Token:       "secret",
		LastEventID: "41",
	})
	require.NoError(t, err)
	defer stream.Close()

	h := <-headers
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
	assert.Equal(t, "text/event-stream", h.Get("Accept"))
	assert.Equal(t, "no-cache", h.Get("Cache-Control"))
	assert.Equal(t, "41", h.Get("Last-Event-ID"))

	var got []sse.Event
	for ev := range stream.Events() {
		got = append(got, ev)
	}
	require.Len(t, got, 2)
	assert.Equal(t, "init", got[0].Name)
	assert.Equal(t, "notification", got[1].Name)
	assert.Equal(t, "42", got[1].ID)

	assert.ErrorIs(t, stream.Err(), sse.ErrStreamClosed)
}

func TestHTTPTransport_Status(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := sse.NewHTTPTransport().Open(context.Background(), sse.Request{BaseURL: srv.URL})
	require.ErrorIs(t, err, sse.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "401")
}

func TestHTTPTransport_ContentType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := sse.NewHTTPTransport().Open(context.Background(), sse.Request{BaseURL: srv.URL})
	assert.ErrorIs(t, err, sse.ErrUnexpectedContentType)
}

func TestHTTPTransport_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := sse.NewHTTPTransport().Open(context.Background(), sse.Request{BaseURL: url})
	assert.Error(t, err)
}

func TestHTTPTransport_CloseEndsStream(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := eventStream(t, func(w http.ResponseWriter, r *http.Request, flush func()) {
		fmt.Fprint(w, "data: first\n\n")
		flush()
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer close(release)

	stream, err := sse.NewHTTPTransport().Open(context.Background(), sse.Request{BaseURL: srv.URL})
	require.NoError(t, err)

	select {
	case ev := <-stream.Events():
		assert.Equal(t, "first", ev.Data)
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())

	require.Eventually(t, func() bool {
		select {
		case _, ok := <-stream.Events():
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
	assert.NoError(t, stream.Err())
}

func TestHTTPTransport_Options(t *testing.T) {
	t.Parallel()

	seen := make(chan *http.Request, 1)
	srv := eventStream(t, func(w http.ResponseWriter, r *http.Request, flush func()) {
		seen <- r
	})

	tr := sse.NewHTTPTransport(
		sse.WithPath("/custom/stream"),
		sse.WithHeader("X-Client", "notifyd"),
		sse.WithHTTPClient(srv.Client()),
	)
	assert.Equal(t, srv.URL+"/custom/stream", tr.URL(srv.URL))

	stream, err := tr.Open(context.Background(), sse.Request{BaseURL: srv.URL})
	require.NoError(t, err)
	defer stream.Close()

	r := <-seen
	assert.Equal(t, "/custom/stream", r.URL.Path)
	assert.Equal(t, "notifyd", r.Header.Get("X-Client"))
	assert.Empty(t, r.Header.Get("Authorization"))
}
