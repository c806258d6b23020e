package observability

import "time"

// Observer is a unified interface for observing the tracing export pipeline.
// It allows external code to observe operations happening in processors and
// exporter packages (kafkaexport, minioexport, httpexport, stdoutexport)
// without coupling them to a specific observability implementation
// (metrics, logging, or both).
//
// This interface is optional - pipeline packages work perfectly fine without
// an observer.
type Observer interface {
	// ObserveOperation is called when a pipeline operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about a pipeline operation.
// This struct is designed to be generic enough to work across processors and
// every exporter backend while providing enough detail for comprehensive
// observability.
type OperationContext struct {
	// Component identifies which pipeline package performed the operation.
	// Examples: "processor.batch", "exporter.kafka", "exporter.minio",
	// "exporter.http", "exporter.stdout"
	Component string

	// Operation describes what operation was performed.
	// Examples: "export", "flush", "shutdown"
	Operation string

	// Resource identifies the primary resource being operated on.
	// Examples:
	//   Kafka:   topic name ("spans")
	//   Storage: bucket name ("trace-archive")
	//   HTTP:    endpoint URL
	Resource string

	// SubResource provides additional resource context (optional).
	// Examples:
	//   Storage: object key within the bucket
	//   Export:  the export result classification ("success",
	//            "failed_retryable", "failed_not_retryable")
	SubResource string

	// Duration is how long the operation took from start to completion.
	Duration time.Duration

	// Error is the error behind a failed operation, if any.
	// nil indicates a successful operation.
	Error error

	// Size represents the amount of data involved in the operation
	// (optional). For export operations this is the number of spans in the
	// batch; for storage operations it may be bytes written.
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// Examples: {"attempt": "2", "partition": "3"}
	Metadata map[string]interface{}
}
