package httpexport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tracekit-dev/tracekit/trace"
)

func testBatch(names ...string) []*trace.SpanData {
	batch := make([]*trace.SpanData, 0, len(names))
	for i, name := range names {
		batch = append(batch, &trace.SpanData{
			SpanContext: trace.SpanContext{
				TraceID: trace.TraceID{0x01},
				SpanID:  trace.SpanID{byte(i + 1)},
			},
			Name:       name,
			StartTime:  time.Now(),
			EndTime:    time.Now().Add(time.Millisecond),
			Attributes: trace.NewEvictedMap(8),
			Events:     trace.NewEvictedQueue[trace.Event](8),
			Links:      trace.NewEvictedQueue[trace.Link](8),
		})
	}
	return batch
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	exporter, err := New(Config{Endpoint: "http://collector.local/v1/spans"})
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeout, exporter.cfg.RequestTimeout)
	assert.NotNil(t, exporter.client)
}

func TestExportPostsBatchAsJSON(t *testing.T) {
	t.Parallel()

	var (
		gotPath        string
		gotContentType string
		gotAuth        string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	exporter, err := New(Config{
		Endpoint: server.URL + "/v1/spans",
		Headers:  map[string]string{"Authorization": "Bearer token-123"},
	})
	require.NoError(t, err)

	result := exporter.Export(context.Background(), testBatch("checkout", "payment"))
	assert.Equal(t, trace.ExportSuccess, result)

	assert.Equal(t, "/v1/spans", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Bearer token-123", gotAuth)

	var decoded []*trace.SpanData
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "checkout", decoded[0].Name)
	assert.Equal(t, "payment", decoded[1].Name)
}

func TestExportClassifiesStatusCodes(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		status int
		want   trace.ExportResult
	}{
		"200 ok":           {http.StatusOK, trace.ExportSuccess},
		"204 no content":   {http.StatusNoContent, trace.ExportSuccess},
		"400 bad request":  {http.StatusBadRequest, trace.ExportFailedNotRetryable},
		"401 unauthorized": {http.StatusUnauthorized, trace.ExportFailedNotRetryable},
		"500 server error": {http.StatusInternalServerError, trace.ExportFailedNotRetryable},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer server.Close()

			exporter, err := New(Config{Endpoint: server.URL})
			require.NoError(t, err)

			result := exporter.Export(context.Background(), testBatch("op"))
			assert.Equal(t, tc.want, result)
		})
	}
}

func TestExportTransportFailureIsRetryable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close() // nothing is listening anymore

	exporter, err := New(Config{Endpoint: endpoint, RequestTimeout: time.Second})
	require.NoError(t, err)

	result := exporter.Export(context.Background(), testBatch("op"))
	assert.Equal(t, trace.ExportFailedRetryable, result)
}

func TestExportEmptyBatch(t *testing.T) {
	t.Parallel()

	exporter, err := New(Config{Endpoint: "http://collector.local"})
	require.NoError(t, err)

	assert.Equal(t, trace.ExportSuccess, exporter.Export(context.Background(), nil))
}

func TestExportAfterShutdown(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	exporter, err := New(Config{Endpoint: server.URL})
	require.NoError(t, err)
	require.NoError(t, exporter.Shutdown(context.Background()))
	require.NoError(t, exporter.Shutdown(context.Background()), "shutdown is idempotent")

	result := exporter.Export(context.Background(), testBatch("late"))
	assert.Equal(t, trace.ExportFailedNotRetryable, result)
	assert.False(t, called, "no request may leave a shut-down exporter")
}

func TestDefaultClientTimeoutFallback(t *testing.T) {
	t.Parallel()

	client := NewDefaultClient(0)
	dc, ok := client.(*defaultClient)
	require.True(t, ok)
	assert.Equal(t, DefaultRequestTimeout, dc.client.Timeout)
}
