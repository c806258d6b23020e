package metrics

// Config defines the configuration for the pipeline metrics observer.
type Config struct {
	// ServiceName is added as a constant "service" label on every series.
	// Optional; empty means no service label.
	ServiceName string

	// DurationBuckets overrides the histogram buckets (in seconds) used for
	// operation durations. Nil means the package defaults, which cover the
	// 1ms..30s range typical for export calls.
	DurationBuckets []float64
}

// defaultDurationBuckets cover the expected range of export call latency.
var defaultDurationBuckets = []float64{
	0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30,
}
