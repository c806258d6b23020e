package trace

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// TracerProvider owns the tracing configuration, the shared resource
// descriptor and the ordered chain of span processors. One provider serves a
// whole process; tracers obtained from it share everything but their scope.
//
// TracerProvider is safe for concurrent use.
type TracerProvider struct {
	limits      SpanLimits
	resource    *Resource
	sampler     Sampler
	idGenerator IDGenerator

	mu         sync.RWMutex
	processors []SpanProcessor

	shutdown atomic.Bool
}

// NewTracerProvider creates a provider from cfg, applying defaults for every
// zero-valued field.
func NewTracerProvider(cfg Config) *TracerProvider {
	sampler := cfg.Sampler
	if sampler == nil {
		sampler = AlwaysSample()
	}
	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = newRandomIDGenerator()
	}

	attrs := make([]KeyValue, 0, len(cfg.ResourceAttributes)+2)
	if cfg.ServiceName != "" {
		attrs = append(attrs, String("service.name", cfg.ServiceName))
	}
	if cfg.AppEnv != "" {
		attrs = append(attrs, String("deployment.environment", cfg.AppEnv))
	}
	attrs = append(attrs, cfg.ResourceAttributes...)

	return &TracerProvider{
		limits:      cfg.SpanLimits.withDefaults(),
		resource:    NewResource(attrs...),
		sampler:     sampler,
		idGenerator: idGenerator,
	}
}

// Tracer returns a span factory scoped to the named instrumentation library.
// Version may be empty.
func (p *TracerProvider) Tracer(name, version string) *Tracer {
	return &Tracer{
		provider: p,
		scope:    Scope{Name: name, Version: version},
	}
}

// Resource returns the shared resource descriptor attached to every span
// from this provider.
func (p *TracerProvider) Resource() *Resource {
	return p.resource
}

// RegisterSpanProcessor appends a processor to the chain. The chain is read
// at span finalization time, so spans started before the registration still
// reach the new processor.
func (p *TracerProvider) RegisterSpanProcessor(sp SpanProcessor) {
	if sp == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processors = append(p.processors, sp)
}

// spanProcessors returns a snapshot of the current chain.
func (p *TracerProvider) spanProcessors() []SpanProcessor {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]SpanProcessor, len(p.processors))
	copy(out, p.processors)
	return out
}

// ForceFlush flushes every registered processor, in registration order.
func (p *TracerProvider) ForceFlush(ctx context.Context) error {
	var errs []error
	for _, sp := range p.spanProcessors() {
		if err := sp.ForceFlush(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Shutdown stops the provider: every processor is shut down in registration
// order and the provider is marked dead, so spans finalized afterwards are
// silently discarded. Shutdown is idempotent; only the first call does work.
func (p *TracerProvider) Shutdown(ctx context.Context) error {
	if p.shutdown.Swap(true) {
		return nil
	}

	var errs []error
	for _, sp := range p.spanProcessors() {
		if err := sp.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsShutdown reports whether Shutdown has been called.
func (p *TracerProvider) IsShutdown() bool {
	return p.shutdown.Load()
}
