package repository

import (
	"context"
	"log/slog"

	"github.com/allisson/custody/internal/account/domain"
	"github.com/allisson/custody/internal/metrics"
)

// LockEventSink is the observability boundary for lock protocol events.
// Implementations must not drop events silently.
type LockEventSink interface {
	Record(ctx context.Context, event domain.LockEvent)
}

// LoggerEventSink writes lock events to a structured logger. Forgotten releases and stale
// capabilities are logged at error level, contention at warn level.
type LoggerEventSink struct {
	logger *slog.Logger
}

// NewLoggerEventSink creates a LoggerEventSink.
func NewLoggerEventSink(logger *slog.Logger) *LoggerEventSink {
	return &LoggerEventSink{logger: logger}
}

// Record logs the event.
func (s *LoggerEventSink) Record(ctx context.Context, event domain.LockEvent) {
	attrs := []slog.Attr{
		slog.String("account_id", event.AccountID),
		slog.String("kind", string(event.Kind)),
		slog.Time("occurred_at", event.OccurredAt),
	}
	if event.Err != nil {
		attrs = append(attrs, slog.Any("error", event.Err))
	}

	switch event.Kind {
	case domain.LockEventForgottenRelease:
		s.logger.LogAttrs(ctx, slog.LevelError, "account lock released without save", attrs...)
	case domain.LockEventStaleCapability:
		s.logger.LogAttrs(ctx, slog.LevelError, "stale account lock capability", attrs...)
	default:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "account lock contention", attrs...)
	}
}

// MetricsEventSink counts lock events by kind.
type MetricsEventSink struct {
	metrics metrics.BusinessMetrics
}

// NewMetricsEventSink creates a MetricsEventSink.
func NewMetricsEventSink(businessMetrics metrics.BusinessMetrics) *MetricsEventSink {
	return &MetricsEventSink{metrics: businessMetrics}
}

// Record increments the lock event counter.
func (s *MetricsEventSink) Record(ctx context.Context, event domain.LockEvent) {
	s.metrics.RecordLockEvent(ctx, "account", string(event.Kind))
}

// MultiEventSink fans events out to every configured sink.
type MultiEventSink struct {
	sinks []LockEventSink
}

// NewMultiEventSink creates a MultiEventSink. Nil sinks are skipped.
func NewMultiEventSink(sinks ...LockEventSink) *MultiEventSink {
	m := &MultiEventSink{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Record forwards the event to every sink.
func (m *MultiEventSink) Record(ctx context.Context, event domain.LockEvent) {
	for _, s := range m.sinks {
		s.Record(ctx, event)
	}
}
