package sse

import "errors"

var (
	ErrUnexpectedStatus      = errors.New("sse: unexpected response status")
	ErrUnexpectedContentType = errors.New("sse: response is not an event stream")
	ErrStreamClosed          = errors.New("sse: stream closed by server")
)
