package trace

import "context"

// ExportResult classifies the outcome of an export attempt.
type ExportResult int

const (
	// ExportSuccess means the batch was exported.
	ExportSuccess ExportResult = iota

	// ExportFailedNotRetryable means the export failed terminally; the caller
	// must not retry the batch.
	ExportFailedNotRetryable

	// ExportFailedRetryable means the export failed transiently; the caller
	// should record the failure and may retry the batch.
	ExportFailedRetryable
)

// String returns the lowercase name of the export result.
func (r ExportResult) String() string {
	switch r {
	case ExportSuccess:
		return "success"
	case ExportFailedNotRetryable:
		return "failed_not_retryable"
	case ExportFailedRetryable:
		return "failed_retryable"
	default:
		return "unknown"
	}
}

// Exporter is the interface protocol-specific backends implement to receive
// finished span batches. Exporters are expected to be simple encoders and
// transmitters; batching, queuing and retry policy belong to the processor
// driving them.
//
// Concrete implementations live in the kafkaexport, minioexport, httpexport
// and stdoutexport packages.
type Exporter interface {
	// Export transmits a batch of span snapshots.
	//
	// Export is never called concurrently for the same exporter instance; it
	// is called again only after the current call returns. Implementations
	// must not block indefinitely: there must be a bounded internal timeout
	// after which the call returns a failure result.
	Export(ctx context.Context, batch []*SpanData) ExportResult

	// Shutdown releases the exporter's resources, flushing if it buffers.
	// It is called at most once per instance, during provider teardown, and
	// must not block indefinitely. Export calls made after Shutdown return
	// ExportFailedNotRetryable.
	Shutdown(ctx context.Context) error
}
