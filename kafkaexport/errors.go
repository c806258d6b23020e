package kafkaexport

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/segmentio/kafka-go"
)

// Configuration errors returned by New.
var (
	// ErrMissingBrokers is returned when no broker addresses are configured.
	ErrMissingBrokers = errors.New("at least one broker is required")

	// ErrMissingTopic is returned when no topic is configured.
	ErrMissingTopic = errors.New("topic is required")
)

// errShutdown marks export attempts made after Shutdown.
var errShutdown = errors.New("exporter is shut down")

// isRetryable classifies a publish error for the three-way export result.
// Broker conditions that clear up on their own (leader elections, timeouts,
// throttling, lost connections) are retryable; everything else, notably
// malformed payloads and authorization failures, is not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var kafkaErr kafka.Error
	if errors.As(err, &kafkaErr) {
		return kafkaErr.Temporary() || kafkaErr.Timeout()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	return errors.As(err, &opErr)
}
