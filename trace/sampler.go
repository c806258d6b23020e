package trace

// SamplingParameters carries the information available at span creation for
// a sampling decision.
type SamplingParameters struct {
	// ParentContext is the parent span identity, invalid for root spans.
	ParentContext SpanContext

	// TraceID is the identity of the trace the span will belong to.
	TraceID TraceID

	// Name is the requested span name.
	Name string

	// Kind is the requested span kind.
	Kind SpanKind
}

// Sampler decides whether a new span records. Implementations must be safe
// for concurrent use.
type Sampler interface {
	// ShouldSample reports whether the span described by params records.
	ShouldSample(params SamplingParameters) bool

	// Description identifies the sampler in diagnostics.
	Description() string
}

type alwaysSampler struct{}

func (alwaysSampler) ShouldSample(SamplingParameters) bool { return true }
func (alwaysSampler) Description() string                  { return "AlwaysSample" }

// AlwaysSample returns a sampler that records every span. It is the default.
func AlwaysSample() Sampler {
	return alwaysSampler{}
}

type neverSampler struct{}

func (neverSampler) ShouldSample(SamplingParameters) bool { return false }
func (neverSampler) Description() string                  { return "NeverSample" }

// NeverSample returns a sampler that records no spans; every span it touches
// is non-recording.
func NeverSample() Sampler {
	return neverSampler{}
}
