package trace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/tracekit-dev/tracekit/observability"
)

// SpanProcessor consumes finished span snapshots. Processors are registered
// on a TracerProvider and invoked synchronously, in registration order, on
// whichever goroutine releases a span's last handle. A processor doing slow
// work must queue internally rather than block that goroutine.
type SpanProcessor interface {
	// OnEnd receives a finished snapshot. The snapshot is owned by the
	// processor; the core never touches it again.
	OnEnd(sd *SpanData)

	// ForceFlush exports everything the processor has buffered, honoring ctx.
	ForceFlush(ctx context.Context) error

	// Shutdown flushes and releases the processor's resources, including
	// shutting down its exporter. OnEnd calls after Shutdown are ignored.
	Shutdown(ctx context.Context) error
}

// SimpleProcessor exports each finished span synchronously, one-span batches
// in finalization order. It serializes Export calls with a mutex, as the
// exporter contract requires. Intended for tests and tooling; production
// setups should prefer BatchProcessor.
type SimpleProcessor struct {
	exporter Exporter
	logger   *zap.Logger

	mu       sync.Mutex
	shutdown atomic.Bool
}

// NewSimpleProcessor creates a synchronous processor around exporter.
// logger may be nil.
func NewSimpleProcessor(exporter Exporter, logger *zap.Logger) *SimpleProcessor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SimpleProcessor{exporter: exporter, logger: logger}
}

// OnEnd exports the snapshot immediately.
func (p *SimpleProcessor) OnEnd(sd *SpanData) {
	if p.shutdown.Load() || sd == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	result := p.exporter.Export(context.Background(), []*SpanData{sd})
	if result != ExportSuccess {
		p.logger.Warn("span export failed",
			zap.String("result", result.String()),
			zap.String("span_name", sd.Name),
		)
	}
}

// ForceFlush is a no-op: nothing is buffered.
func (p *SimpleProcessor) ForceFlush(ctx context.Context) error {
	return nil
}

// Shutdown stops the processor and shuts down its exporter. Idempotent.
func (p *SimpleProcessor) Shutdown(ctx context.Context) error {
	if p.shutdown.Swap(true) {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.exporter.Shutdown(ctx)
}

// Defaults applied by NewBatchProcessor when the corresponding config field
// is zero.
const (
	// DefaultMaxQueueSize is the default capacity of the pending-span queue.
	DefaultMaxQueueSize = 2048

	// DefaultMaxExportBatchSize is the default maximum spans per export call.
	DefaultMaxExportBatchSize = 512

	// DefaultBatchTimeout is the default interval after which a partial
	// batch is exported anyway.
	DefaultBatchTimeout = 5 * time.Second

	// DefaultExportTimeout is the default bound on a single export call.
	DefaultExportTimeout = 30 * time.Second
)

// BatchProcessorConfig configures a BatchProcessor.
type BatchProcessorConfig struct {
	// MaxQueueSize is the capacity of the pending-span queue. When the queue
	// is full, new spans are dropped and counted rather than blocking the
	// finalizing goroutine.
	// Default: 2048
	MaxQueueSize int

	// MaxExportBatchSize is the maximum number of spans handed to the
	// exporter in one call. A full batch triggers an immediate export.
	// Default: 512
	MaxExportBatchSize int

	// BatchTimeout is how long a partial batch may wait before being
	// exported anyway.
	// Default: 5s
	BatchTimeout time.Duration

	// ExportTimeout bounds each Export call issued by the worker.
	// Default: 30s
	ExportTimeout time.Duration

	// Logger receives export failure and lifecycle logs. Nil means no logs.
	Logger *zap.Logger

	// Observer receives an OperationContext per export attempt. Nil disables
	// observation.
	Observer observability.Observer
}

// BatchProcessor queues finished spans on a bounded channel and exports
// size- or interval-triggered batches from a single background worker. A
// batch that fails with ExportFailedRetryable is retried once; the core
// implements no further retry policy.
type BatchProcessor struct {
	cfg      BatchProcessorConfig
	exporter Exporter
	logger   *zap.Logger

	queue   chan *SpanData
	flushCh chan chan struct{}
	stopCh  chan struct{}
	stopped atomic.Bool
	dropped atomic.Uint64
	wg      sync.WaitGroup
}

// NewBatchProcessor creates a batching processor around exporter and starts
// its worker goroutine.
func NewBatchProcessor(exporter Exporter, cfg BatchProcessorConfig) *BatchProcessor {
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = DefaultMaxQueueSize
	}
	if cfg.MaxExportBatchSize <= 0 {
		cfg.MaxExportBatchSize = DefaultMaxExportBatchSize
	}
	if cfg.MaxExportBatchSize > cfg.MaxQueueSize {
		cfg.MaxExportBatchSize = cfg.MaxQueueSize
	}
	if cfg.BatchTimeout <= 0 {
		cfg.BatchTimeout = DefaultBatchTimeout
	}
	if cfg.ExportTimeout <= 0 {
		cfg.ExportTimeout = DefaultExportTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	p := &BatchProcessor{
		cfg:      cfg,
		exporter: exporter,
		logger:   cfg.Logger,
		queue:    make(chan *SpanData, cfg.MaxQueueSize),
		flushCh:  make(chan chan struct{}),
		stopCh:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.worker()

	return p
}

// OnEnd enqueues the snapshot. When the queue is full the span is dropped
// and counted; OnEnd never blocks.
func (p *BatchProcessor) OnEnd(sd *SpanData) {
	if p.stopped.Load() || sd == nil {
		return
	}
	select {
	case p.queue <- sd:
	default:
		p.dropped.Add(1)
	}
}

// DroppedSpans returns the number of spans dropped because the queue was
// full.
func (p *BatchProcessor) DroppedSpans() uint64 {
	return p.dropped.Load()
}

// ForceFlush exports everything currently queued and waits for the export
// to finish or ctx to expire.
func (p *BatchProcessor) ForceFlush(ctx context.Context) error {
	if p.stopped.Load() {
		return nil
	}
	done := make(chan struct{})
	select {
	case p.flushCh <- done:
	case <-p.stopCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown drains the queue, exports the remainder and shuts down the
// exporter. Idempotent.
func (p *BatchProcessor) Shutdown(ctx context.Context) error {
	if p.stopped.Swap(true) {
		return nil
	}
	close(p.stopCh)

	waitCh := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(waitCh)
	}()
	select {
	case <-waitCh:
	case <-ctx.Done():
		return ctx.Err()
	}

	return p.exporter.Shutdown(ctx)
}

func (p *BatchProcessor) worker() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.BatchTimeout)
	defer ticker.Stop()

	batch := make([]*SpanData, 0, p.cfg.MaxExportBatchSize)

	for {
		select {
		case sd := <-p.queue:
			batch = append(batch, sd)
			if len(batch) >= p.cfg.MaxExportBatchSize {
				batch = p.export(batch)
				ticker.Reset(p.cfg.BatchTimeout)
			}
		case <-ticker.C:
			batch = p.export(batch)
		case done := <-p.flushCh:
			batch = p.export(append(batch, p.drain()...))
			close(done)
			ticker.Reset(p.cfg.BatchTimeout)
		case <-p.stopCh:
			p.export(append(batch, p.drain()...))
			return
		}
	}
}

// drain empties the queue without blocking.
func (p *BatchProcessor) drain() []*SpanData {
	var out []*SpanData
	for {
		select {
		case sd := <-p.queue:
			out = append(out, sd)
		default:
			return out
		}
	}
}

// export ships the batch in chunks of MaxExportBatchSize and returns the
// reset batch slice. Retryable failures are retried once.
func (p *BatchProcessor) export(batch []*SpanData) []*SpanData {
	for len(batch) > 0 {
		n := len(batch)
		if n > p.cfg.MaxExportBatchSize {
			n = p.cfg.MaxExportBatchSize
		}
		chunk := batch[:n]
		batch = batch[n:]

		result := p.exportChunk(chunk)
		if result == ExportFailedRetryable {
			p.logger.Warn("retrying span batch export", zap.Int("spans", len(chunk)))
			result = p.exportChunk(chunk)
		}
		if result != ExportSuccess {
			p.logger.Error("span batch export failed",
				zap.String("result", result.String()),
				zap.Int("spans", len(chunk)),
			)
		}
	}
	return batch[:0]
}

func (p *BatchProcessor) exportChunk(chunk []*SpanData) ExportResult {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.ExportTimeout)
	defer cancel()

	start := time.Now()
	result := p.exporter.Export(ctx, chunk)

	if p.cfg.Observer != nil {
		var opErr error
		if result != ExportSuccess {
			opErr = errExportFailed
		}
		p.cfg.Observer.ObserveOperation(observability.OperationContext{
			Component:   "processor.batch",
			Operation:   "export",
			SubResource: result.String(),
			Duration:    time.Since(start),
			Error:       opErr,
			Size:        int64(len(chunk)),
		})
	}
	return result
}
