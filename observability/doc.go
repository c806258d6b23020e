// Package observability provides a unified interface for observing
// operations across the tracing export pipeline.
//
// # Overview
//
// The observability package defines a single Observer interface that the
// batch processor and every exporter backend can use to emit operation
// events. This allows applications to implement metrics and logging for the
// pipeline in one place, regardless of which backends are wired in.
//
// # Design Philosophy
//
// 1. **Optional**: pipeline packages work perfectly without an observer
// 2. **Unified**: same interface for processors and all exporter backends
// 3. **Flexible**: an Observer can implement metrics, logging, or both
// 4. **Non-intrusive**: minimal code in pipeline packages
//
// # Usage in pipeline packages
//
// Exporter packages accept an optional Observer in their config and call it
// when operations complete:
//
//	if e.observer != nil {
//	    e.observer.ObserveOperation(observability.OperationContext{
//	        Component: "exporter.kafka",
//	        Operation: "export",
//	        Resource:  e.cfg.Topic,
//	        Duration:  time.Since(start),
//	        Error:     err,
//	        Size:      int64(len(batch)),
//	    })
//	}
//
// # Usage in applications
//
// Applications implement the Observer interface to handle operations; the
// metrics package ships a prometheus-backed implementation.
package observability
