package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tracekit-dev/tracekit/observability"
)

// ExportObserver records pipeline operations as Prometheus metrics.
// It implements the observability.Observer interface and can be passed to
// the batch processor and any exporter backend.
//
// ExportObserver is safe for concurrent use.
type ExportObserver struct {
	registry *prometheus.Registry

	opsTotal   *prometheus.CounterVec
	spansTotal *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

// NewExportObserver creates an observer with its own Prometheus registry.
func NewExportObserver(cfg Config) *ExportObserver {
	buckets := cfg.DurationBuckets
	if buckets == nil {
		buckets = defaultDurationBuckets
	}

	constLabels := prometheus.Labels{}
	if cfg.ServiceName != "" {
		constLabels["service"] = cfg.ServiceName
	}

	o := &ExportObserver{
		registry: prometheus.NewRegistry(),
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "tracekit_pipeline_operations_total",
			Help:        "Pipeline operations by component, operation and outcome.",
			ConstLabels: constLabels,
		}, []string{"component", "operation", "outcome"}),
		spansTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "tracekit_pipeline_spans_total",
			Help:        "Spans handled by pipeline operations, by component.",
			ConstLabels: constLabels,
		}, []string{"component"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "tracekit_pipeline_operation_duration_seconds",
			Help:        "Duration of pipeline operations.",
			ConstLabels: constLabels,
			Buckets:     buckets,
		}, []string{"component", "operation"}),
	}

	o.registry.MustRegister(o.opsTotal, o.spansTotal, o.duration)
	return o
}

// ObserveOperation records one pipeline operation.
func (o *ExportObserver) ObserveOperation(ctx observability.OperationContext) {
	outcome := "success"
	if ctx.Error != nil {
		outcome = "error"
	}

	o.opsTotal.WithLabelValues(ctx.Component, ctx.Operation, outcome).Inc()
	if ctx.Size > 0 {
		o.spansTotal.WithLabelValues(ctx.Component).Add(float64(ctx.Size))
	}
	o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
}

// Registry returns the observer's Prometheus registry, for registering
// additional collectors or for test scraping.
func (o *ExportObserver) Registry() *prometheus.Registry {
	return o.registry
}

// Handler returns an HTTP handler serving the observer's metrics in the
// Prometheus exposition format.
func (o *ExportObserver) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}
