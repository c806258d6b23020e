// Package minioexport implements the trace.Exporter contract against
// S3-compatible object storage. Each exported batch is archived as one JSON
// object, keyed by date and finalization time, so traces can be replayed or
// bulk-loaded into an analysis backend later.
//
// Object keys have the form:
//
//	<prefix>/<yyyy>/<mm>/<dd>/<unix-nanos>-<n>spans.json
//
// # Usage
//
//	exporter, err := minioexport.New(minioexport.Config{
//		Endpoint:  "minio:9000",
//		AccessKey: "...",
//		SecretKey: "...",
//		Bucket:    "trace-archive",
//	})
//	if err != nil {
//		return err
//	}
//	provider.RegisterSpanProcessor(trace.NewBatchProcessor(exporter, trace.BatchProcessorConfig{}))
//
// # Failure classification
//
// Connectivity problems, timeouts, throttling (429/503) and server-side 5xx
// responses classify as retryable; access and bucket errors do not.
package minioexport
