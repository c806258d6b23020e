package minioexport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"github.com/tracekit-dev/tracekit/observability"
	"github.com/tracekit-dev/tracekit/trace"
)

// Exporter archives finished span batches as JSON objects in an
// S3-compatible bucket. It implements the trace.Exporter interface.
type Exporter struct {
	cfg      Config
	client   *minio.Client
	shutdown atomic.Bool
}

var _ trace.Exporter = (*Exporter)(nil)

// New creates an object-storage span exporter from cfg, applying defaults
// for every zero-valued field.
func New(cfg Config) (*Exporter, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.Bucket == "" {
		return nil, ErrMissingBucket
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.UploadTimeout <= 0 {
		cfg.UploadTimeout = DefaultUploadTimeout
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}

	return &Exporter{cfg: cfg, client: client}, nil
}

// Export uploads the batch as one JSON object. The upload is bounded by
// UploadTimeout.
func (e *Exporter) Export(ctx context.Context, batch []*trace.SpanData) trace.ExportResult {
	start := time.Now()

	if e.shutdown.Load() {
		e.logFailure("export called after shutdown", errShutdown, "")
		e.observe("export", "", time.Since(start), errShutdown, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}
	if len(batch) == 0 {
		return trace.ExportSuccess
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		e.logFailure("failed to encode span batch", err, "")
		e.observe("export", "", time.Since(start), err, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}

	key := e.objectKey(start, len(batch))

	ctx, cancel := context.WithTimeout(ctx, e.cfg.UploadTimeout)
	defer cancel()

	_, err = e.client.PutObject(ctx, e.cfg.Bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	e.observe("export", key, time.Since(start), err, int64(len(batch)))
	if err == nil {
		return trace.ExportSuccess
	}

	e.logFailure("failed to archive span batch", err, key)
	if isRetryable(err) {
		return trace.ExportFailedRetryable
	}
	return trace.ExportFailedNotRetryable
}

// Shutdown marks the exporter closed; the underlying client holds no
// long-lived connections worth draining. Idempotent.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.shutdown.Store(true)
	return nil
}

// objectKey builds the date-partitioned archive key for a batch.
func (e *Exporter) objectKey(t time.Time, spans int) string {
	t = t.UTC()
	return fmt.Sprintf("%s/%s/%d-%dspans.json", e.cfg.KeyPrefix, t.Format("2006/01/02"), t.UnixNano(), spans)
}

func (e *Exporter) logFailure(msg string, err error, key string) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Warn(msg,
			zap.Error(err),
			zap.String("bucket", e.cfg.Bucket),
			zap.String("key", key),
		)
	}
}

func (e *Exporter) observe(operation, key string, duration time.Duration, err error, size int64) {
	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveOperation(observability.OperationContext{
			Component:   "exporter.minio",
			Operation:   operation,
			Resource:    e.cfg.Bucket,
			SubResource: key,
			Duration:    duration,
			Error:       err,
			Size:        size,
		})
	}
}
