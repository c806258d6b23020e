package trace

import (
	"context"
	"time"
)

// Tracer creates spans scoped to one instrumentation library. Obtain one
// from TracerProvider.Tracer; the zero value is not usable.
//
// A tracer never caches its provider's processor chain: the chain is read at
// finalization time, so processors registered after a span started still
// receive it.
type Tracer struct {
	provider *TracerProvider
	scope    Scope
}

// resolveProvider returns the owning provider, or nil once it has been shut
// down. Finalization treats a nil provider as a silent drop.
func (t *Tracer) resolveProvider() *TracerProvider {
	if t.provider == nil || t.provider.shutdown.Load() {
		return nil
	}
	return t.provider
}

// SpanStartOption configures a span at creation.
type SpanStartOption func(*spanStartConfig)

type spanStartConfig struct {
	kind       SpanKind
	startTime  time.Time
	attributes []KeyValue
	links      []Link
	parent     SpanContext
	newRoot    bool
}

// WithSpanKind sets the span kind. Unrecognized kinds are normalized to
// SpanKindInternal.
func WithSpanKind(kind SpanKind) SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.kind = kind
	}
}

// WithStartTime sets an explicit start timestamp instead of the current time.
func WithStartTime(t time.Time) SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.startTime = t
	}
}

// WithAttributes sets initial attributes on the span.
func WithAttributes(attrs ...KeyValue) SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.attributes = append(cfg.attributes, attrs...)
	}
}

// WithLinks adds links to other spans at creation time.
func WithLinks(links ...Link) SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.links = append(cfg.links, links...)
	}
}

// WithParent sets an explicit parent identity, overriding whatever the
// context carries. Useful when the parent identity arrived out of band, e.g.
// from a message header.
func WithParent(parent SpanContext) SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.parent = parent
	}
}

// WithNewRoot starts the span as a new trace root, ignoring any parent in
// the context.
func WithNewRoot() SpanStartOption {
	return func(cfg *spanStartConfig) {
		cfg.newRoot = true
	}
}

// Start creates a new span named name and returns it along with a context
// carrying its identity for child-span parenting. The span is a child of the
// identity found in ctx unless WithNewRoot is given.
//
// The returned handle must be released (typically deferred) by every owner;
// the span is exported when the last handle is released.
func (t *Tracer) Start(ctx context.Context, name string, opts ...SpanStartOption) (context.Context, *Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := spanStartConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	parent := SpanContextFromContext(ctx)
	if cfg.parent.IsValid() {
		parent = cfg.parent
	}
	if cfg.newRoot {
		parent = SpanContext{}
	}

	provider := t.resolveProvider()
	if provider == nil {
		// Provider torn down: hand back an inert non-recording span.
		span := newSpan(SpanContext{}, nil, t)
		return ctx, span
	}

	var traceID TraceID
	var spanID SpanID
	if parent.TraceID.IsValid() {
		traceID = parent.TraceID
		spanID = provider.idGenerator.NewSpanID(traceID)
	} else {
		traceID, spanID = provider.idGenerator.NewIDs()
	}

	kind := ValidateSpanKind(cfg.kind)
	sampled := provider.sampler.ShouldSample(SamplingParameters{
		ParentContext: parent,
		TraceID:       traceID,
		Name:          name,
		Kind:          kind,
	})

	sc := SpanContext{TraceID: traceID, SpanID: spanID}
	if sampled {
		sc.TraceFlags = parent.TraceFlags | FlagsSampled
	} else {
		sc.TraceFlags = parent.TraceFlags &^ FlagsSampled
	}

	var data *SpanData
	if sampled {
		startTime := cfg.startTime
		if startTime.IsZero() {
			startTime = time.Now()
		}

		limits := provider.limits
		data = &SpanData{
			SpanContext:  sc,
			ParentSpanID: parent.SpanID,
			SpanKind:     kind,
			Name:         name,
			StartTime:    startTime,
			Attributes:   NewEvictedMap(limits.AttributeCountLimit),
			Events:       NewEvictedQueue[Event](limits.EventCountLimit),
			Links:        NewEvictedQueue[Link](limits.LinkCountLimit),
			Resource:     provider.resource,
			Scope:        t.scope,
		}
		for _, kv := range cfg.attributes {
			data.Attributes.Set(kv)
		}
		for _, link := range cfg.links {
			data.Links.PushBack(link)
		}
	}

	span := newSpan(sc, data, t)
	return ContextWithSpanContext(ctx, sc), span
}
