// Package metrics provides a Prometheus-backed implementation of the
// observability.Observer interface for the tracing export pipeline.
//
// # Overview
//
// ExportObserver turns pipeline operation events into Prometheus series:
//
//   - tracekit_pipeline_operations_total{component,operation,outcome}
//   - tracekit_pipeline_spans_total{component}
//   - tracekit_pipeline_operation_duration_seconds{component,operation}
//
// # Usage
//
//	observer := metrics.NewExportObserver(metrics.Config{ServiceName: "my-service"})
//
//	exporter, _ := kafkaexport.New(kafkaexport.Config{
//		Brokers:  []string{"localhost:9092"},
//		Topic:    "spans",
//		Observer: observer,
//	})
//
//	http.Handle("/metrics", observer.Handler())
//
// # FX Module Integration
//
// FXModule provides the observer both as the concrete *ExportObserver and as
// the observability.Observer interface.
package metrics
