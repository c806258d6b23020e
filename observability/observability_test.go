package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoOpObserver(t *testing.T) {
	t.Parallel()

	observer := NewNoOpObserver()

	assert.NotPanics(t, func() {
		observer.ObserveOperation(OperationContext{})
		observer.ObserveOperation(OperationContext{
			Component:   "exporter.kafka",
			Operation:   "export",
			Resource:    "spans",
			SubResource: "failed_retryable",
			Duration:    time.Second,
			Error:       errors.New("broker unreachable"),
			Size:        128,
			Metadata:    map[string]interface{}{"attempt": "2"},
		})
	})
}
