package minioexport

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// Configuration errors returned by New.
var (
	// ErrMissingEndpoint is returned when no endpoint is configured.
	ErrMissingEndpoint = errors.New("endpoint is required")

	// ErrMissingBucket is returned when no bucket is configured.
	ErrMissingBucket = errors.New("bucket is required")
)

// errShutdown marks export attempts made after Shutdown.
var errShutdown = errors.New("exporter is shut down")

// isRetryable classifies an upload error for the three-way export result.
// Connectivity problems, timeouts, throttling and server-side errors are
// retryable; access and bucket errors are not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	resp := minio.ToErrorResponse(err)
	if resp.StatusCode != 0 {
		switch {
		case resp.StatusCode >= 500:
			return true
		case resp.StatusCode == http.StatusTooManyRequests:
			return true
		default:
			return false
		}
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
