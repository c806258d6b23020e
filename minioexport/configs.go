package minioexport

import (
	"time"

	"github.com/tracekit-dev/tracekit/logger"
	"github.com/tracekit-dev/tracekit/observability"
)

// Default values applied by New when the corresponding config field is zero.
const (
	// DefaultUploadTimeout bounds a single batch upload.
	DefaultUploadTimeout = 30 * time.Second

	// DefaultKeyPrefix is the object key prefix for archived batches.
	DefaultKeyPrefix = "spans"
)

// Config defines the configuration for the object-storage span exporter.
type Config struct {
	// Endpoint is the object storage server address (host:port).
	// This field is required.
	Endpoint string

	// AccessKey is the access key ID used to authenticate.
	AccessKey string

	// SecretKey is the secret access key used to authenticate.
	SecretKey string

	// UseSSL enables TLS for the connection.
	UseSSL bool

	// Bucket is the bucket archived batches are written to. The bucket must
	// already exist; the exporter never creates it.
	// This field is required.
	Bucket string

	// KeyPrefix is prepended to every object key.
	// Default: "spans"
	KeyPrefix string

	// UploadTimeout bounds a single batch upload; it is the exporter's
	// internal upper limit required by the exporter contract.
	// Default: 30s
	UploadTimeout time.Duration

	// Logger receives export failure and lifecycle logs. Optional.
	Logger logger.Logger

	// Observer receives an OperationContext per export attempt. Optional.
	Observer observability.Observer
}
