// Package kafkaexport implements the trace.Exporter contract on top of
// Apache Kafka. Each finished span is published as one JSON message, keyed
// by its trace ID so all spans of a trace land on the same partition and
// downstream consumers can reassemble traces in order.
//
// # Usage
//
//	exporter, err := kafkaexport.New(kafkaexport.Config{
//		Brokers: []string{"kafka-1:9092", "kafka-2:9092"},
//		Topic:   "spans",
//	})
//	if err != nil {
//		return err
//	}
//	provider.RegisterSpanProcessor(trace.NewBatchProcessor(exporter, trace.BatchProcessorConfig{}))
//
// # Failure classification
//
// Broker-side conditions that clear up on their own (leader elections,
// timeouts, throttling, connection loss) classify as retryable; malformed
// payloads, authorization failures and unknown topics do not. The exporter
// itself never retries - retry policy belongs to the processor driving it.
//
// # Shutdown
//
// Shutdown flushes and closes the writer once. Export calls made afterwards
// return trace.ExportFailedNotRetryable.
package kafkaexport
