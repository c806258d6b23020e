package trace

// Default span limits applied when a limit is left at zero.
const (
	// DefaultAttributeCountLimit is the default capacity of a span's
	// attribute store.
	DefaultAttributeCountLimit = 128

	// DefaultEventCountLimit is the default capacity of a span's event queue.
	DefaultEventCountLimit = 128

	// DefaultLinkCountLimit is the default capacity of a span's link queue.
	DefaultLinkCountLimit = 128
)

// SpanLimits caps the growth of the bounded containers every snapshot owns.
// Capacities are fixed at span creation; items past capacity are evicted
// oldest-first and counted on the container.
type SpanLimits struct {
	// AttributeCountLimit is the maximum number of attributes retained per
	// span. Zero means DefaultAttributeCountLimit; negative means zero.
	AttributeCountLimit int

	// EventCountLimit is the maximum number of events retained per span.
	// Zero means DefaultEventCountLimit; negative means zero.
	EventCountLimit int

	// LinkCountLimit is the maximum number of links retained per span.
	// Zero means DefaultLinkCountLimit; negative means zero.
	LinkCountLimit int
}

func (l SpanLimits) withDefaults() SpanLimits {
	if l.AttributeCountLimit == 0 {
		l.AttributeCountLimit = DefaultAttributeCountLimit
	}
	if l.EventCountLimit == 0 {
		l.EventCountLimit = DefaultEventCountLimit
	}
	if l.LinkCountLimit == 0 {
		l.LinkCountLimit = DefaultLinkCountLimit
	}
	return l
}

// Config defines the configuration for a TracerProvider.
type Config struct {
	// ServiceName specifies the name of the service using this provider.
	// It appears as the "service.name" resource attribute on every exported
	// span and should be a stable name that uniquely identifies the service.
	//
	// Example values: "user-service", "payment-processor"
	ServiceName string

	// AppEnv indicates the deployment environment where the service runs.
	// It is set as the "deployment.environment" resource attribute so traces
	// from different environments can be separated in the backend.
	// Common values include "development", "staging", "production".
	AppEnv string

	// SpanLimits caps per-span attribute, event and link growth. Zero-valued
	// limits fall back to the package defaults.
	SpanLimits SpanLimits

	// ResourceAttributes are extra attributes describing the producing
	// process, merged with the attributes derived from ServiceName and
	// AppEnv into the shared resource descriptor.
	ResourceAttributes []KeyValue

	// Sampler decides whether a new span records. Nil means AlwaysSample.
	// No sampling algorithm ships with this package beyond the two
	// terminals; bring your own policy by implementing Sampler.
	Sampler Sampler

	// IDGenerator produces trace and span identities. Nil means the
	// crypto/rand-backed default.
	IDGenerator IDGenerator
}
