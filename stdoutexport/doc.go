// Package stdoutexport implements the trace.Exporter contract as a console
// writer, intended for development and debugging. Each span in a batch is
// written as one structured log line through Zap.
//
// # Usage
//
//	exporter := stdoutexport.New(stdoutexport.Config{})
//	provider.RegisterSpanProcessor(trace.NewSimpleProcessor(exporter, nil))
//
// Export never fails once the exporter is constructed; calls after Shutdown
// return trace.ExportFailedNotRetryable per the exporter contract.
package stdoutexport
