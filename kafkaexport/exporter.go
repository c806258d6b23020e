package kafkaexport

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/tracekit-dev/tracekit/observability"
	"github.com/tracekit-dev/tracekit/trace"
)

// Exporter publishes finished spans to a Kafka topic.
// It implements the trace.Exporter interface.
type Exporter struct {
	cfg    Config
	writer *kafka.Writer

	shutdown  atomic.Bool
	closeOnce sync.Once
}

var _ trace.Exporter = (*Exporter)(nil)

// New creates a Kafka span exporter from cfg, applying defaults for every
// zero-valued field.
func New(cfg Config) (*Exporter, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrMissingBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrMissingTopic
	}
	if cfg.RequiredAcks == 0 {
		cfg.RequiredAcks = DefaultRequiredAcks
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = DefaultBatchTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		WriteTimeout:           cfg.WriteTimeout,
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		MaxAttempts:            cfg.MaxAttempts,
		AllowAutoTopicCreation: cfg.AllowAutoTopicCreation,
	}

	return &Exporter{cfg: cfg, writer: writer}, nil
}

// Export publishes one JSON message per span, keyed by trace ID. The write
// is bounded by WriteTimeout.
func (e *Exporter) Export(ctx context.Context, batch []*trace.SpanData) trace.ExportResult {
	start := time.Now()

	if e.shutdown.Load() {
		e.logFailure("export called after shutdown", errShutdown)
		e.observe("export", time.Since(start), errShutdown, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}
	if len(batch) == 0 {
		return trace.ExportSuccess
	}

	messages, err := encodeBatch(batch)
	if err != nil {
		e.logFailure("failed to encode span batch", err)
		e.observe("export", time.Since(start), err, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.WriteTimeout)
	defer cancel()

	err = e.writer.WriteMessages(ctx, messages...)
	e.observe("export", time.Since(start), err, int64(len(batch)))
	if err == nil {
		return trace.ExportSuccess
	}

	e.logFailure("failed to publish span batch", err)
	if isRetryable(err) {
		return trace.ExportFailedRetryable
	}
	return trace.ExportFailedNotRetryable
}

// Shutdown flushes and closes the writer. Idempotent.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.shutdown.Store(true)

	var err error
	e.closeOnce.Do(func() {
		start := time.Now()
		err = e.writer.Close()
		e.observe("shutdown", time.Since(start), err, 0)
		if err != nil {
			e.logFailure("failed to close kafka writer", err)
		}
	})
	return err
}

func encodeBatch(batch []*trace.SpanData) ([]kafka.Message, error) {
	messages := make([]kafka.Message, 0, len(batch))
	for _, sd := range batch {
		payload, err := json.Marshal(sd)
		if err != nil {
			return nil, err
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(sd.SpanContext.TraceID.String()),
			Value: payload,
		})
	}
	return messages, nil
}

func (e *Exporter) logFailure(msg string, err error) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Warn(msg, zap.Error(err), zap.String("topic", e.cfg.Topic))
	}
}

func (e *Exporter) observe(operation string, duration time.Duration, err error, size int64) {
	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveOperation(observability.OperationContext{
			Component: "exporter.kafka",
			Operation: operation,
			Resource:  e.cfg.Topic,
			Duration:  duration,
			Error:     err,
			Size:      size,
		})
	}
}
