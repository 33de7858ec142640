// Package sse implements the wire format for the Server-Sent Events
// streaming binding.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Writer writes SSE frames to an http.ResponseWriter, flushing after every
// frame so events reach the client immediately.
type Writer struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares the response for event streaming and returns a Writer.
// Returns false if the ResponseWriter does not support flushing.
func NewWriter(w http.ResponseWriter) (*Writer, bool) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, false
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	return &Writer{w: w, flusher: flusher}, true
}

// WriteEvent writes a named event with a JSON-encoded data payload.
func (s *Writer) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode event %q: %w", event, err)
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return fmt.Errorf("write event %q: %w", event, err)
	}
	s.flusher.Flush()

	return nil
}

// WriteKeepAlive writes an SSE comment (: keepalive) and flushes.
// SSE spec: lines starting with : are comments, ignored by the client.
// Returns an error if the connection is closed.
func (s *Writer) WriteKeepAlive() error {
	if _, err := fmt.Fprintf(s.w, ": keepalive\n\n"); err != nil {
		return fmt.Errorf("write keepalive failed: %w", err)
	}
	s.flusher.Flush()

	return nil
}
