package httpexport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tracekit-dev/tracekit/observability"
	"github.com/tracekit-dev/tracekit/trace"
)

// ErrMissingEndpoint is returned by New when no endpoint is configured.
var ErrMissingEndpoint = errors.New("endpoint is required")

// errShutdown marks export attempts made after Shutdown.
var errShutdown = errors.New("exporter is shut down")

var _ trace.Exporter = (*Exporter)(nil)

// Exporter ships span batches to an HTTP endpoint as JSON arrays.
// It implements the trace.Exporter interface.
type Exporter struct {
	cfg      Config
	client   HTTPClient
	shutdown atomic.Bool
}

// New creates an HTTP span exporter from cfg, applying defaults for every
// zero-valued field.
func New(cfg Config) (*Exporter, error) {
	if cfg.Endpoint == "" {
		return nil, ErrMissingEndpoint
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Client == nil {
		cfg.Client = NewDefaultClient(cfg.RequestTimeout)
	}
	return &Exporter{cfg: cfg, client: cfg.Client}, nil
}

// Export POSTs the batch to the configured endpoint. Transport failures are
// retryable; a delivered-but-rejected request is not.
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

	payload, err := json.Marshal(batch)
	if err != nil {
		e.logFailure("failed to encode span batch", err)
		e.observe("export", time.Since(start), err, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		e.logFailure("failed to build export request", err)
		e.observe("export", time.Since(start), err, int64(len(batch)))
		return trace.ExportFailedNotRetryable
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range e.cfg.Headers {
		req.Header.Set(k, v)
	}

	result, err := e.client.Send(req)
	if err != nil {
		e.logFailure("export request failed", err)
	}
	e.observe("export", time.Since(start), exportError(result, err), int64(len(batch)))
	return result
}

// Shutdown marks the exporter closed. The default client holds no
// connections worth draining; Shutdown exists to enforce the
// export-after-shutdown contract. Idempotent.
func (e *Exporter) Shutdown(ctx context.Context) error {
	e.shutdown.Swap(true)
	return nil
}

func (e *Exporter) logFailure(msg string, err error) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Warn(msg, zap.Error(err), zap.String("endpoint", e.cfg.Endpoint))
	}
}

func (e *Exporter) observe(operation string, duration time.Duration, err error, size int64) {
	if e.cfg.Observer != nil {
		e.cfg.Observer.ObserveOperation(observability.OperationContext{
			Component: "exporter.http",
			Operation: operation,
			Resource:  e.cfg.Endpoint,
			Duration:  duration,
			Error:     err,
			Size:      size,
		})
	}
}

// exportError reduces a result/error pair to the error reported to
// observers: a non-success result without a transport error still counts as
// a failed operation.
func exportError(result trace.ExportResult, err error) error {
	if err != nil {
		return err
	}
	if result != trace.ExportSuccess {
		return errors.New("export rejected: " + result.String())
	}
	return nil
}
