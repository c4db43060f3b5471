package analytics

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/mcoot/hearts/internal/model"
)

// Sink receives named events emitted around game operations.
// Emit must not block and never reports failure to the caller.
type Sink interface {
	Emit(ctx context.Context, event model.Event)
}

// LogSink writes each event as a structured log line
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a sink backed by logger
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit logs the event with its parameters as attributes
func (s *LogSink) Emit(ctx context.Context, event model.Event) {
	keys := make([]string, 0, len(event.Params))
	for k := range event.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys)+2)
	attrs = append(attrs,
		slog.String("event", string(event.Type)),
		slog.Time("timestamp", event.Timestamp),
	)
	for _, k := range keys {
		attrs = append(attrs, slog.String(k, event.Params[k]))
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "analytics event", attrs...)
}

// MemorySink keeps every event in memory
type MemorySink struct {
	mu     sync.Mutex
	events []model.Event
}

// NewMemorySink creates an empty MemorySink
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit records the event
func (s *MemorySink) Emit(ctx context.Context, event model.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns a copy of the recorded events
func (s *MemorySink) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Types returns the recorded event types in order
func (s *MemorySink) Types() []model.EventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.EventType, len(s.events))
	for i, e := range s.events {
		out[i] = e.Type
	}
	return out
}

var (
	_ Sink = (*LogSink)(nil)
	_ Sink = (*MemorySink)(nil)
)
