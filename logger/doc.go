// Package logger provides structured logging for tracekit applications and
// the export pipeline.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design
// pattern:
//   - Logger interface: defines the contract for logging operations
//   - LoggerClient struct: concrete implementation wrapping Uber's Zap
//   - NewLoggerClient constructor: returns *LoggerClient (concrete type)
//   - FXModule: provides both *LoggerClient and Logger for dependency
//     injection
//
// Core features:
//   - Structured logging with zap fields
//   - Configurable log levels
//   - JSON output with ISO8601 timestamps, directed to stderr
//   - Span correlation: SpanFields renders a span identity as trace_id and
//     span_id fields so logs line up with exported traces
//
// # Direct usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Info,
//		ServiceName: "my-service",
//	})
//	log.Info("span batch exported", zap.Int("spans", 128))
//
// # Span correlation
//
//	_, span := tracer.Start(ctx, "handle-request")
//	defer span.Release()
//	log.Info("processing request", logger.SpanFields(span.SpanContext())...)
package logger
