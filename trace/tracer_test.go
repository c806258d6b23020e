package trace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartGeneratesValidIdentity(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	tracer := provider.Tracer("test", "")

	_, a := tracer.Start(context.Background(), "a")
	_, b := tracer.Start(context.Background(), "b")
	defer a.Release()
	defer b.Release()

	require.True(t, a.SpanContext().IsValid())
	require.True(t, b.SpanContext().IsValid())
	assert.True(t, a.SpanContext().IsSampled())

	assert.NotEqual(t, a.SpanContext().TraceID, b.SpanContext().TraceID)
	assert.NotEqual(t, a.SpanContext().SpanID, b.SpanContext().SpanID)
}

func TestStartParentsFromContext(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("test", "")

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, child := tracer.Start(ctx, "child")

	assert.Equal(t, parent.SpanContext().TraceID, child.SpanContext().TraceID)
	assert.NotEqual(t, parent.SpanContext().SpanID, child.SpanContext().SpanID)

	child.Release()
	parent.Release()

	received := capture.received()
	require.Len(t, received, 2)
	childData := received[0]
	assert.Equal(t, "child", childData.Name)
	assert.Equal(t, parent.SpanContext().SpanID, childData.ParentSpanID)
}

func TestStartWithExplicitParent(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("test", "")

	remote := SpanContext{
		TraceID:    TraceID{0xaa},
		SpanID:     SpanID{0xbb},
		TraceFlags: FlagsSampled,
	}

	ctx, local := tracer.Start(context.Background(), "local")
	_, span := tracer.Start(ctx, "from-header", WithParent(remote))
	defer local.Release()

	assert.Equal(t, remote.TraceID, span.SpanContext().TraceID, "explicit parent overrides the context")
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	assert.Equal(t, remote.SpanID, received[0].ParentSpanID)
}

func TestStartWithNewRootIgnoresParent(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	tracer := provider.Tracer("test", "")

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, root := tracer.Start(ctx, "root", WithNewRoot())
	defer parent.Release()
	defer root.Release()

	assert.NotEqual(t, parent.SpanContext().TraceID, root.SpanContext().TraceID)
}

func TestStartOptions(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("test", "")

	start := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	link := Link{SpanContext: SpanContext{
		TraceID: TraceID{0x01},
		SpanID:  SpanID{0x02},
	}}

	_, span := tracer.Start(context.Background(), "op",
		WithSpanKind(SpanKindServer),
		WithStartTime(start),
		WithAttributes(String("peer", "client-1"), Int("attempt", 1)),
		WithLinks(link),
	)
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	sd := received[0]

	assert.Equal(t, SpanKindServer, sd.SpanKind)
	assert.True(t, sd.StartTime.Equal(start))

	v, ok := sd.Attributes.Get("peer")
	require.True(t, ok)
	assert.Equal(t, "client-1", v.AsString())

	require.Equal(t, 1, sd.Links.Len())
	assert.Equal(t, link.SpanContext, sd.Links.All()[0].SpanContext)
}

func TestStartNormalizesUnknownKind(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("test", "")

	_, span := tracer.Start(context.Background(), "op", WithSpanKind(SpanKind(99)))
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	assert.Equal(t, SpanKindInternal, received[0].SpanKind)
}

func TestStartAfterProviderShutdown(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("test", "")
	require.NoError(t, provider.Shutdown(context.Background()))

	ctx, span := tracer.Start(context.Background(), "op")
	assert.False(t, span.IsRecording())
	assert.Equal(t, SpanContext{}, span.SpanContext())
	assert.Equal(t, SpanContext{}, SpanContextFromContext(ctx))

	span.Release()
	assert.Empty(t, capture.received())
}

func TestStartNilContext(t *testing.T) {
	t.Parallel()

	provider := newTestProvider()
	tracer := provider.Tracer("test", "")

	//nolint:staticcheck // exercising the nil-context guard
	ctx, span := tracer.Start(nil, "op")
	defer span.Release()

	require.NotNil(t, ctx)
	assert.True(t, SpanContextFromContext(ctx).IsValid())
}

func TestNeverSamplerClearsSampledFlag(t *testing.T) {
	t.Parallel()

	provider := NewTracerProvider(Config{Sampler: NeverSample()})
	tracer := provider.Tracer("test", "")

	_, span := tracer.Start(context.Background(), "op")
	defer span.Release()

	assert.False(t, span.IsRecording())
}

func TestTracerScopeReachesSnapshot(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := newTestProvider(capture)
	tracer := provider.Tracer("orders/db", "1.2.0")

	_, span := tracer.Start(context.Background(), "op")
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	assert.Equal(t, Scope{Name: "orders/db", Version: "1.2.0"}, received[0].Scope)
}

func TestSpanLimitsAreApplied(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := NewTracerProvider(Config{
		SpanLimits: SpanLimits{
			AttributeCountLimit: 2,
			EventCountLimit:     1,
			LinkCountLimit:      1,
		},
	})
	provider.RegisterSpanProcessor(capture)
	tracer := provider.Tracer("test", "")

	_, span := tracer.Start(context.Background(), "op")
	span.SetAttributes(Int("a", 1), Int("b", 2), Int("c", 3))
	span.AddEvent("first")
	span.AddEvent("second")
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	sd := received[0]

	assert.Equal(t, 2, sd.Attributes.Len())
	assert.Equal(t, 1, sd.Attributes.DroppedCount())
	assert.Equal(t, 1, sd.Events.Len())
	assert.Equal(t, "second", sd.Events.All()[0].Name)
	assert.Equal(t, 1, sd.Events.DroppedCount())
}

func TestProviderResourceOnSnapshot(t *testing.T) {
	t.Parallel()

	capture := &captureProcessor{}
	provider := NewTracerProvider(Config{
		ServiceName:        "orders",
		AppEnv:             "test",
		ResourceAttributes: []KeyValue{String("region", "eu-west-1")},
	})
	provider.RegisterSpanProcessor(capture)
	tracer := provider.Tracer("test", "")

	_, span := tracer.Start(context.Background(), "op")
	span.Release()

	received := capture.received()
	require.Len(t, received, 1)
	require.NotNil(t, received[0].Resource)
	assert.Same(t, provider.Resource(), received[0].Resource)

	attrs := received[0].Resource.Attributes()
	assert.Contains(t, attrs, String("service.name", "orders"))
	assert.Contains(t, attrs, String("deployment.environment", "test"))
	assert.Contains(t, attrs, String("region", "eu-west-1"))
}
