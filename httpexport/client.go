package httpexport

import (
	"net/http"
	"time"

	"github.com/tracekit-dev/tracekit/trace"
)

// HTTPClient is the minimal send primitive HTTP-based exporters need. A
// returned error means the request never produced a response (connection
// failure, timeout); a response that arrived is classified through the
// ExportResult instead.
type HTTPClient interface {
	// Send transmits one request and classifies the response.
	Send(req *http.Request) (trace.ExportResult, error)
}

// defaultClient wraps *http.Client. Any 2xx status maps to ExportSuccess;
// every other status maps to ExportFailedNotRetryable, since the request was
// delivered and rejected.
type defaultClient struct {
	client *http.Client
}

// NewDefaultClient returns an HTTPClient backed by net/http with the given
// request timeout.
func NewDefaultClient(timeout time.Duration) HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &defaultClient{client: &http.Client{Timeout: timeout}}
}

func (c *defaultClient) Send(req *http.Request) (trace.ExportResult, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return trace.ExportFailedRetryable, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return trace.ExportSuccess, nil
	}
	return trace.ExportFailedNotRetryable, nil
}
