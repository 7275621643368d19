package sse_test

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifystream/pkg/sse"
)

func readAll(t *testing.T, input string) []sse.Event {
	t.Helper()

	dec := sse.NewDecoder(strings.NewReader(input))
	var events []sse.Event
	for {
		ev, err := dec.Next()
		if err == io.EOF {
			return events
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
}

func TestDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []sse.Event
	}{
		{
			name:  "named event",
			input: "event: notification\ndata: {\"title\":\"T\"}\n\n",
			want:  []sse.Event{{Name: "notification", Data: `{"title":"T"}`}},
		},
		{
			name:  "default name",
			input: "data: hello\n\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: "hello"}},
		},
		{
			name:  "multi-line data",
			input: "data: line one\ndata: line two\n\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: "line one\nline two"}},
		},
		{
			name:  "crlf and comments",
			input: ": keep-alive\r\nevent: init\r\ndata: ok\r\n\r\n",
			want:  []sse.Event{{Name: "init", Data: "ok"}},
		},
		{
			name:  "id persists",
			input: "id: 7\ndata: a\n\ndata: b\n\n",
			want: []sse.Event{
				{ID: "7", Name: sse.DefaultEventName, Data: "a"},
				{ID: "7", Name: sse.DefaultEventName, Data: "b"},
			},
		},
		{
			name:  "retry",
			input: "retry: 3000\ndata: x\n\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: "x", Retry: 3 * time.Second}},
		},
		{
			name:  "no space after colon",
			input: "event:notification\ndata:x\n\n",
			want:  []sse.Event{{Name: "notification", Data: "x"}},
		},
		{
			name:  "event without data is dropped",
			input: "event: init\n\nevent: notification\ndata: y\n\n",
			want:  []sse.Event{{Name: "notification", Data: "y"}},
		},
		{
			name:  "empty data field",
			input: "data\n\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: ""}},
		},
		{
			name:  "unterminated event discarded",
			input: "data: done\n\ndata: partial\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: "done"}},
		},
		{
			name:  "unknown fields ignored",
			input: "foo: bar\ndata: z\n\n",
			want:  []sse.Event{{Name: sse.DefaultEventName, Data: "z"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, readAll(t, tt.input))
		})
	}
}

func TestDecoder_LastEventID(t *testing.T) {
	t.Parallel()

	dec := sse.NewDecoder(strings.NewReader("id: 1\ndata: a\n\nid: 2\n\n"))
	_, err := dec.Next()
	require.NoError(t, err)
	assert.Equal(t, "1", dec.LastEventID())

	_, err = dec.Next()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "2", dec.LastEventID())
}
