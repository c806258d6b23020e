package stdoutexport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tracekit-dev/tracekit/trace"
)

func observedExporter(cfg Config) (*Exporter, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg.Logger = zap.New(core)
	return New(cfg), logs
}

func testSpan(name string) *trace.SpanData {
	attrs := trace.NewEvictedMap(8)
	attrs.Set(trace.Int("retries", 2))

	events := trace.NewEvictedQueue[trace.Event](8)
	events.PushBack(trace.Event{Name: "checkpoint", Timestamp: time.Now()})

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return &trace.SpanData{
		SpanContext: trace.SpanContext{
			TraceID:    trace.TraceID{0x01},
			SpanID:     trace.SpanID{0x02},
			TraceFlags: trace.FlagsSampled,
		},
		Name:       name,
		SpanKind:   trace.SpanKindClient,
		StartTime:  start,
		EndTime:    start.Add(250 * time.Millisecond),
		Attributes: attrs,
		Events:     events,
		Links:      trace.NewEvictedQueue[trace.Link](8),
		Status:     trace.Status{Code: trace.StatusOk, Message: "done"},
	}
}

func TestExportWritesOneLinePerSpan(t *testing.T) {
	t.Parallel()

	exporter, logs := observedExporter(Config{})

	result := exporter.Export(context.Background(), []*trace.SpanData{testSpan("a"), testSpan("b"), nil})
	assert.Equal(t, trace.ExportSuccess, result)
	require.Equal(t, 2, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "a", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "01000000000000000000000000000000", fields["trace_id"])
	assert.Equal(t, "0200000000000000", fields["span_id"])
	assert.Equal(t, "client", fields["kind"])
	assert.Equal(t, "ok", fields["status"])
	assert.Equal(t, "done", fields["status_message"])
	assert.Equal(t, "2", fields["attr.retries"])
	assert.Equal(t, 250*time.Millisecond, fields["duration"])
	assert.NotContains(t, fields, "events")
}

func TestExportIncludesEventsWhenConfigured(t *testing.T) {
	t.Parallel()

	exporter, logs := observedExporter(Config{IncludeEvents: true})

	exporter.Export(context.Background(), []*trace.SpanData{testSpan("a")})
	require.Equal(t, 1, logs.Len())

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, []interface{}{"checkpoint"}, fields["events"])
}

func TestExportAfterShutdown(t *testing.T) {
	t.Parallel()

	exporter, logs := observedExporter(Config{})

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "shutdown is idempotent")

	result := exporter.Export(context.Background(), []*trace.SpanData{testSpan("late")})
	assert.Equal(t, trace.ExportFailedNotRetryable, result)
	assert.Zero(t, logs.Len())
}

func TestNewDefaultLogger(t *testing.T) {
	t.Parallel()

	exporter := New(Config{})
	require.NotNil(t, exporter.logger)
	assert.Equal(t, trace.ExportSuccess, exporter.Export(context.Background(), nil))
}
