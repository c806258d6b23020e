package httpexport

import (
	"time"

	"github.com/tracekit-dev/tracekit/logger"
	"github.com/tracekit-dev/tracekit/observability"
)

// Default values applied by New when the corresponding config field is zero.
const (
	// DefaultRequestTimeout bounds a single export request.
	DefaultRequestTimeout = 10 * time.Second
)

// Config defines the configuration for the HTTP span exporter.
type Config struct {
	// Endpoint is the URL export batches are POSTed to.
	// This field is required.
	Endpoint string

	// Headers are added to every export request, e.g. authentication
	// tokens. Content-Type is always set to application/json.
	Headers map[string]string

	// RequestTimeout bounds a single export request; it is the exporter's
	// internal upper limit required by the exporter contract.
	// Default: 10s
	RequestTimeout time.Duration

	// Client is the transport used to send requests. Nil means a default
	// client wrapping net/http with RequestTimeout.
	Client HTTPClient

	// Logger receives export failure logs. Optional.
	Logger logger.Logger

	// Observer receives an OperationContext per export attempt. Optional.
	Observer observability.Observer
}
