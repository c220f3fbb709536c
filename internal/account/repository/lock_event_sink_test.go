package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/custody/internal/account/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domainName, operation, status string) {
	m.Called(ctx, domainName, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domainName, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domainName, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordLockEvent(ctx context.Context, domainName, kind string) {
	m.Called(ctx, domainName, kind)
}

func TestLoggerEventSink_Record(t *testing.T) {
	tests := []struct {
		name  string
		kind  domain.LockEventKind
		err   error
		level string
		msg   string
	}{
		{
			name:  "ForgottenReleaseIsError",
			kind:  domain.LockEventForgottenRelease,
			level: "ERROR",
			msg:   "account lock released without save",
		},
		{
			name:  "StaleCapabilityIsError",
			kind:  domain.LockEventStaleCapability,
			err:   domain.ErrStaleCapability,
			level: "ERROR",
			msg:   "stale account lock capability",
		},
		{
			name:  "ContentionIsWarn",
			kind:  domain.LockEventContention,
			err:   domain.ErrAccountLocked,
			level: "WARN",
			msg:   "account lock contention",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sink := NewLoggerEventSink(slog.New(slog.NewJSONHandler(&buf, nil)))

			sink.Record(context.Background(), domain.NewLockEvent(tt.kind, "A1", tt.err))

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, tt.msg, line["msg"])
			assert.Equal(t, "A1", line["account_id"])
			assert.Equal(t, string(tt.kind), line["kind"])
			if tt.err != nil {
				assert.Equal(t, tt.err.Error(), line["error"])
			} else {
				assert.NotContains(t, line, "error")
			}
		})
	}
}

func TestMetricsEventSink_Record(t *testing.T) {
	ctx := context.Background()
	bm := &mockBusinessMetrics{}
	bm.On("RecordLockEvent", ctx, "account", "forgotten_release").Once()

	NewMetricsEventSink(bm).Record(ctx, domain.NewLockEvent(domain.LockEventForgottenRelease, "A1", nil))

	bm.AssertExpectations(t)
}

func TestMultiEventSink_Record(t *testing.T) {
	first := &recordingSink{}
	second := &recordingSink{}
	sink := NewMultiEventSink(first, nil, second)

	sink.Record(context.Background(), domain.NewLockEvent(domain.LockEventContention, "A1", errors.New("held")))

	assert.Len(t, first.Events(), 1)
	assert.Len(t, second.Events(), 1)
}
