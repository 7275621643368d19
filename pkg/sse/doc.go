// Package sse is the push transport for the notification stream.
//
// Decoder parses the text/event-stream wire format. HTTPTransport opens the
// stream endpoint with a bearer token and exposes the decoded events through
// the Stream interface:
//
//	t := sse.NewHTTPTransport()
//	stream, err := t.Open(ctx, sse.Request{BaseURL: base, Token: token})
//	if err != nil {
//	    return err
//	}
//	defer stream.Close()
//
//	for ev := range stream.Events() {
//	    // ev.Name, ev.Data
//	}
//	if err := stream.Err(); err != nil {
//	    // dropped by the server or the network
//	}
//
// The transport does not reconnect; that is the caller's policy.
package sse
