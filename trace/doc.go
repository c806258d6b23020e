// Package trace implements the span lifecycle core of the tracekit
// instrumentation library: span creation, shared-handle finalization, and
// the dispatch of finished spans to pluggable export backends.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - TracerProvider struct: owns configuration, the resource descriptor and
//     the ordered chain of span processors
//   - Tracer struct: scoped span factory obtained from a provider
//   - Span struct: the user-facing handle; cheap to duplicate, all duplicates
//     share one finalization unit
//   - SpanProcessor interface: consumer of finished span snapshots
//   - Exporter interface: terminal consumer that transmits batches off-process
//
// # Span lifecycle
//
// Starting a span produces a handle backed by a reference-counted finalization
// unit. The unit holds the mutable SpanData snapshot behind a per-span lock;
// mutating calls (SetAttribute, AddEvent, SetStatus, UpdateName, End) update
// the snapshot in place and never block on I/O. Spans created while sampling
// is off carry no snapshot and every operation on them is an inert no-op.
//
// Export is driven by reference release, not by End. End only records the
// requested end timestamp. When the last handle referencing a unit is
// released, the unit takes the snapshot, normalizes its end time, and pushes
// it through the provider's current processor chain exactly once:
//
//	ctx, span := tracer.Start(ctx, "process-request")
//	defer span.Release()
//
//	span.SetAttribute(trace.Int("retries", 2))
//	span.SetStatus(trace.StatusOk, "")
//
// Handles may be duplicated with Clone when a span is shared across
// goroutines; each duplicate must be released independently, and whichever
// release drops the count to zero performs the export dispatch on its own
// goroutine. When several processors are registered, each receives an
// independently owned snapshot; the last one receives the original without a
// copy, so the common single-processor setup never pays for cloning.
//
// # Processors and exporters
//
// SimpleProcessor exports every finished span synchronously; BatchProcessor
// queues spans on a bounded channel and exports size- or interval-triggered
// batches from a background worker. Both delegate to an Exporter, whose
// Export call is never issued concurrently per instance and must bound its
// own blocking. Exporters classify failures as retryable or not via
// ExportResult; the core itself never retries.
//
// Backend implementations of the Exporter contract live in the kafkaexport,
// minioexport, httpexport and stdoutexport packages.
//
// # FX Module Integration
//
// The package provides an FX module that manages provider shutdown:
//
//	app := fx.New(
//		trace.FXModule,
//		fx.Provide(func() trace.Config {
//			return trace.Config{ServiceName: "my-service", AppEnv: "production"}
//		}),
//	)
//	app.Run()
//
// # Thread Safety
//
// All methods on TracerProvider, Tracer and Span are safe for concurrent use
// by multiple goroutines. Span mutation is serialized through the span's own
// lock only; spans never contend with each other.
package trace
