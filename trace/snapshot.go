package trace

import (
	"encoding/json"
	"time"
)

// SpanKind describes the role a span plays in a trace.
type SpanKind int

const (
	// SpanKindUnspecified is the zero value; it is normalized to
	// SpanKindInternal when a span is created.
	SpanKindUnspecified SpanKind = iota

	// SpanKindInternal marks a span internal to an application.
	SpanKindInternal

	// SpanKindServer marks the server side of a remote request.
	SpanKindServer

	// SpanKindClient marks the client side of a remote request.
	SpanKindClient

	// SpanKindProducer marks the initiator of an asynchronous message.
	SpanKindProducer

	// SpanKindConsumer marks the receiver of an asynchronous message.
	SpanKindConsumer
)

// ValidateSpanKind returns kind if it is one of the defined kinds, and
// SpanKindInternal otherwise.
func ValidateSpanKind(kind SpanKind) SpanKind {
	switch kind {
	case SpanKindInternal, SpanKindServer, SpanKindClient, SpanKindProducer, SpanKindConsumer:
		return kind
	default:
		return SpanKindInternal
	}
}

// String returns the lowercase name of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanKindInternal:
		return "internal"
	case SpanKindServer:
		return "server"
	case SpanKindClient:
		return "client"
	case SpanKindProducer:
		return "producer"
	case SpanKindConsumer:
		return "consumer"
	default:
		return "unspecified"
	}
}

// StatusCode is the coarse outcome of a span.
type StatusCode int

const (
	// StatusUnset is the default status of every span.
	StatusUnset StatusCode = iota

	// StatusOk marks an operation that completed successfully.
	StatusOk

	// StatusError marks an operation that failed.
	StatusError
)

// String returns the lowercase name of the status code.
func (c StatusCode) String() string {
	switch c {
	case StatusOk:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// Status combines a status code with an optional human-readable message.
type Status struct {
	Code    StatusCode `json:"code"`
	Message string     `json:"message"`
}

// Event is a timestamped annotation on a span.
type Event struct {
	Name       string     `json:"name"`
	Timestamp  time.Time  `json:"timestamp"`
	Attributes []KeyValue `json:"attributes,omitempty"`
}

// Link connects a span to another span, possibly in a different trace.
type Link struct {
	SpanContext SpanContext `json:"span_context"`
	Attributes  []KeyValue  `json:"attributes,omitempty"`
}

// Resource describes the entity that produced a set of spans. It is created
// once per provider, read-only after creation, and shared by reference across
// every snapshot from that provider.
type Resource struct {
	attrs []KeyValue
}

// NewResource creates a resource from the given attributes.
func NewResource(attrs ...KeyValue) *Resource {
	return &Resource{attrs: append([]KeyValue(nil), attrs...)}
}

// Attributes returns a copy of the resource attributes.
func (r *Resource) Attributes() []KeyValue {
	if r == nil {
		return nil
	}
	return append([]KeyValue(nil), r.attrs...)
}

// MarshalJSON encodes the resource as its attribute list.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.attrs)
}

// UnmarshalJSON decodes a resource encoded by MarshalJSON.
func (r *Resource) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &r.attrs)
}

// Scope identifies the instrumentation that produced a span. It is read-only
// after creation and not part of the snapshot wire form.
type Scope struct {
	Name    string
	Version string
}

// SpanData contains everything collected by a span and is the standard input
// for exporters. It is mutable through the span handle until finalization and
// must be treated as read-only afterwards.
//
// The JSON wire form round-trips every field except Scope, which stays
// in-process only.
type SpanData struct {
	// SpanContext is the exportable identity of the span.
	SpanContext SpanContext `json:"span_context"`

	// ParentSpanID is the span's parent identity; the zero value means the
	// span is a trace root.
	ParentSpanID SpanID `json:"parent_span_id"`

	// SpanKind is the role the span plays in the trace.
	SpanKind SpanKind `json:"span_kind"`

	// Name is the operation name; replaceable until finalization.
	Name string `json:"name"`

	// StartTime is set at span creation.
	StartTime time.Time `json:"start_time"`

	// EndTime is set by End or normalized at finalization; after finalization
	// it is guaranteed to be at or after StartTime.
	EndTime time.Time `json:"end_time"`

	// Attributes is the bounded attribute store; capacity fixed at creation.
	Attributes *EvictedMap `json:"attributes"`

	// Events is the bounded event queue; capacity fixed at creation.
	Events *EvictedQueue[Event] `json:"events"`

	// Links is the bounded link queue; capacity fixed at creation.
	Links *EvictedQueue[Link] `json:"links"`

	// Status is the span outcome, StatusUnset by default.
	Status Status `json:"status"`

	// Resource describes the producing entity; shared and read-only.
	Resource *Resource `json:"resource"`

	// Scope identifies the instrumentation that produced the span. It is not
	// part of the wire form.
	Scope Scope `json:"-"`
}

// Clone returns an independently owned copy of the snapshot. The bounded
// containers are deep-copied; the resource stays shared because it is
// read-only.
func (sd *SpanData) Clone() *SpanData {
	clone := *sd
	if sd.Attributes != nil {
		clone.Attributes = sd.Attributes.Clone()
	}
	if sd.Events != nil {
		clone.Events = sd.Events.Clone()
	}
	if sd.Links != nil {
		clone.Links = sd.Links.Clone()
	}
	return &clone
}
