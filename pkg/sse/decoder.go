package sse

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// Decoder reads events from a text/event-stream body.
type Decoder struct {
	r      *bufio.Reader
	lastID string
}

// NewDecoder creates a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// LastEventID returns the most recent id field seen.
func (d *Decoder) LastEventID() string {
	return d.lastID
}

// Next returns the next complete event. It returns io.EOF when the input ends;
// a trailing event without its blank-line terminator is discarded.
func (d *Decoder) Next() (Event, error) {
	var (
		name    string
		data    strings.Builder
		hasData bool
		retry   time.Duration
	)

	for {
		line, err := d.r.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return Event{}, err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		if line == "" {
			if !hasData {
				name, retry = "", 0
				if err != nil {
					return Event{}, err
				}
				continue
			}
			if name == "" {
				name = DefaultEventName
			}
			return Event{ID: d.lastID, Name: name, Data: data.String(), Retry: retry}, nil
		}

		if err != nil {
			// Unterminated final line.
			return Event{}, err
		}

		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "event":
			name = value
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "id":
			if !strings.ContainsRune(value, 0) {
				d.lastID = value
			}
		case "retry":
			if ms, perr := strconv.Atoi(value); perr == nil && ms >= 0 {
				retry = time.Duration(ms) * time.Millisecond
			}
		}
	}
}
