package trace

import "context"

// contextKeyType is a private type for context keys to avoid collisions.
type contextKeyType struct{}

var spanContextKey contextKeyType

// ContextWithSpanContext returns a context carrying sc. Spans started from
// the returned context become children of sc.
func ContextWithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanContextKey, sc)
}

// SpanContextFromContext returns the span identity carried by ctx, or the
// invalid zero identity if none is present.
func SpanContextFromContext(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	if sc, ok := ctx.Value(spanContextKey).(SpanContext); ok {
		return sc
	}
	return SpanContext{}
}
