package kafkaexport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracekit-dev/tracekit/trace"
)

func testBatch(names ...string) []*trace.SpanData {
	batch := make([]*trace.SpanData, 0, len(names))
	for i, name := range names {
		batch = append(batch, &trace.SpanData{
			SpanContext: trace.SpanContext{
				TraceID: trace.TraceID{byte(i + 1)},
				SpanID:  trace.SpanID{byte(i + 1)},
			},
			Name:       name,
			StartTime:  time.Now(),
			EndTime:    time.Now().Add(time.Millisecond),
			Attributes: trace.NewEvictedMap(8),
			Events:     trace.NewEvictedQueue[trace.Event](8),
			Links:      trace.NewEvictedQueue[trace.Link](8),
		})
	}
	return batch
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing brokers", func(t *testing.T) {
		t.Parallel()
		_, err := New(Config{Topic: "spans"})
		assert.ErrorIs(t, err, ErrMissingBrokers)
	})

	t.Run("missing topic", func(t *testing.T) {
		t.Parallel()
		_, err := New(Config{Brokers: []string{"localhost:9092"}})
		assert.ErrorIs(t, err, ErrMissingTopic)
	})
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Parallel()

	exporter, err := New(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "spans",
	})
	require.NoError(t, err)

	assert.Equal(t, "spans", exporter.writer.Topic)
	assert.Equal(t, kafka.RequiredAcks(DefaultRequiredAcks), exporter.writer.RequiredAcks)
	assert.Equal(t, DefaultWriteTimeout, exporter.writer.WriteTimeout)
	assert.Equal(t, DefaultBatchSize, exporter.writer.BatchSize)
	assert.Equal(t, DefaultBatchTimeout, exporter.writer.BatchTimeout)
	assert.Equal(t, DefaultMaxAttempts, exporter.writer.MaxAttempts)
	assert.False(t, exporter.writer.AllowAutoTopicCreation)
}

func TestEncodeBatch(t *testing.T) {
	t.Parallel()

	batch := testBatch("checkout", "payment")
	messages, err := encodeBatch(batch)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	for i, msg := range messages {
		assert.Equal(t, []byte(batch[i].SpanContext.TraceID.String()), msg.Key,
			"messages are keyed by trace ID so a trace stays on one partition")

		var decoded trace.SpanData
		require.NoError(t, json.Unmarshal(msg.Value, &decoded))
		assert.Equal(t, batch[i].Name, decoded.Name)
		assert.Equal(t, batch[i].SpanContext, decoded.SpanContext)
	}
}

func TestExportEmptyBatch(t *testing.T) {
	t.Parallel()

	exporter, err := New(Config{Brokers: []string{"localhost:9092"}, Topic: "spans"})
	require.NoError(t, err)

	assert.Equal(t, trace.ExportSuccess, exporter.Export(context.Background(), nil))
}

func TestExportAfterShutdown(t *testing.T) {
	t.Parallel()

	exporter, err := New(Config{Brokers: []string{"localhost:9092"}, Topic: "spans"})
	require.NoError(t, err)

	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "shutdown is idempotent")

	result := exporter.Export(context.Background(), testBatch("late"))
	assert.Equal(t, trace.ExportFailedNotRetryable, result)
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want bool
	}{
		"nil":                     {nil, false},
		"deadline exceeded":       {context.DeadlineExceeded, true},
		"canceled":                {context.Canceled, true},
		"eof":                     {io.EOF, true},
		"unexpected eof":          {io.ErrUnexpectedEOF, true},
		"leader not available":    {kafka.LeaderNotAvailable, true},
		"request timed out":       {kafka.RequestTimedOut, true},
		"invalid topic":           {kafka.InvalidTopic, false},
		"message too large":       {kafka.MessageSizeTooLarge, false},
		"authorization failed":    {kafka.TopicAuthorizationFailed, false},
		"net op error":            {&net.OpError{Op: "dial", Err: errors.New("connection refused")}, true},
		"plain application error": {errors.New("bad payload"), false},
		"wrapped kafka error":     {errors.Join(errors.New("publish failed"), kafka.NotLeaderForPartition), true},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isRetryable(tc.err))
		})
	}
}
