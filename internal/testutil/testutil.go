// Package testutil provides shared helpers for tests: a thread-safe output
// buffer and a slog handler that records emitted messages so tests can
// assert how often a given log line fired.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// LogRecorder is a slog.Handler that records every message it handles.
type LogRecorder struct {
	mu       sync.Mutex
	messages []string
}

// NewLogRecorder creates an empty LogRecorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Logger returns a logger that writes into the recorder.
func (r *LogRecorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Enabled implements slog.Handler; every level is recorded.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, rec.Message)
	return nil
}

// WithAttrs implements slog.Handler. Attributes are not recorded.
func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler {
	return r
}

// WithGroup implements slog.Handler.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// CountMessage returns how many recorded log lines carry the given message.
func (r *LogRecorder) CountMessage(msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, m := range r.messages {
		if m == msg {
			count++
		}
	}
	return count
}
