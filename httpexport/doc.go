// Package httpexport implements the trace.Exporter contract over HTTP and
// defines the minimal transport abstraction HTTP-based exporters share.
//
// # Transport abstraction
//
// Users sometimes choose HTTP clients tied to a particular runtime or
// middleware stack. The HTTPClient interface lets them bring their own send
// primitive:
//
//	type HTTPClient interface {
//		Send(req *http.Request) (trace.ExportResult, error)
//	}
//
// The default implementation wraps *http.Client and maps any 2xx response to
// ExportSuccess and every other status to ExportFailedNotRetryable.
// Transport-specific retry classification beyond that is the exporter's
// responsibility, not the client's.
//
// # Exporter
//
// Exporter POSTs each batch as a JSON array of span snapshots:
//
//	exporter, err := httpexport.New(httpexport.Config{
//		Endpoint: "http://collector:4318/v1/spans",
//	})
//	if err != nil {
//		return err
//	}
//	provider.RegisterSpanProcessor(trace.NewBatchProcessor(exporter, trace.BatchProcessorConfig{}))
//
// Errors reaching the transport (connection refused, timeouts) are
// classified retryable; a delivered-but-rejected request is not.
package httpexport
