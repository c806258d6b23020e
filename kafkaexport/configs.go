package kafkaexport

import (
	"time"

	"github.com/tracekit-dev/tracekit/logger"
	"github.com/tracekit-dev/tracekit/observability"
)

// Default values applied by New when the corresponding config field is zero.
const (
	// DefaultWriteTimeout bounds a single publish including acknowledgment.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultBatchTimeout is how long the writer may hold messages before
	// flushing a partial internal batch.
	DefaultBatchTimeout = 1 * time.Second

	// DefaultBatchSize is the writer's internal batch size.
	DefaultBatchSize = 100

	// DefaultMaxAttempts is how often the writer retries a single write
	// internally before surfacing the error.
	DefaultMaxAttempts = 3

	// DefaultRequiredAcks waits for all in-sync replicas.
	DefaultRequiredAcks = -1
)

// Config defines the configuration for the Kafka span exporter.
type Config struct {
	// Brokers is a list of Kafka broker addresses.
	// This field is required.
	Brokers []string

	// Topic is the Kafka topic span messages are published to.
	// This field is required.
	Topic string

	// RequiredAcks determines how many replica acknowledgments to wait for:
	// 0 (none), 1 (leader only), or -1 (all in-sync replicas).
	// Default: -1
	RequiredAcks int

	// WriteTimeout bounds a single export write; it is the exporter's
	// internal upper limit required by the exporter contract.
	// Default: 10s
	WriteTimeout time.Duration

	// BatchSize is the writer's internal message batch size.
	// Default: 100
	BatchSize int

	// BatchTimeout is the maximum time the writer holds a partial internal
	// batch.
	// Default: 1s
	BatchTimeout time.Duration

	// MaxAttempts is how often the writer retries a failed write internally.
	// Default: 3
	MaxAttempts int

	// AllowAutoTopicCreation determines whether publishing may create the
	// topic on brokers that permit it.
	// Default: false
	AllowAutoTopicCreation bool

	// Logger receives export failure and lifecycle logs. Optional.
	Logger logger.Logger

	// Observer receives an OperationContext per export attempt. Optional.
	Observer observability.Observer
}
