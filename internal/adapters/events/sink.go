package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/flexdao/flexgov/internal/domain"
)

// LogSink writes engine notifications to the structured log. Off-chain
// observers tail these; the engine itself never reads them back.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a new slog-backed event sink
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Emit(ctx context.Context, event domain.Event) {
	s.log.Info(event.String(), "event", event.EventName())
}

// CaptureSink records emitted events in order, for renderers and tests
type CaptureSink struct {
	mu     sync.Mutex
	events []domain.Event
}

// NewCaptureSink creates a new capturing event sink
func NewCaptureSink() *CaptureSink {
	return &CaptureSink{}
}

func (s *CaptureSink) Emit(ctx context.Context, event domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

// Events returns the captured events in emission order
func (s *CaptureSink) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.events))
	copy(out, s.events)
	return out
}
