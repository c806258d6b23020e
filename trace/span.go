package trace

import (
	"sync"
	"sync/atomic"
	"time"
)

// Span is the user-facing handle for a single unit of work. Handles are
// cheap to duplicate with Clone; every duplicate shares one finalization
// unit, and releasing the last duplicate exports the span exactly once.
//
// All methods are safe for concurrent use. Mutating methods serialize
// through the span's own lock and never block on I/O; on a non-recording
// span they are no-ops.
type Span struct {
	sc       SpanContext
	core     *spanCore
	released atomic.Bool
}

// spanCore is the finalization unit: the shared, reference-counted owner of
// a span's snapshot. The data slot transitions to empty exactly once, when
// the reference count reaches zero, regardless of how many handles existed
// or which goroutine released the last one.
type spanCore struct {
	refs   atomic.Int64
	tracer *Tracer

	// recording is fixed at construction; IsRecording reads it without
	// touching the slot lock.
	recording bool

	mu   sync.Mutex
	data *SpanData // nil when non-recording or already finalized
}

func newSpan(sc SpanContext, data *SpanData, tracer *Tracer) *Span {
	core := &spanCore{
		tracer:    tracer,
		recording: data != nil,
		data:      data,
	}
	core.refs.Store(1)
	return &Span{sc: sc, core: core}
}

// withData runs f with the snapshot under the span lock. It is a no-op on
// non-recording and finalized spans.
func (c *spanCore) withData(f func(*SpanData)) {
	if !c.recording {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data != nil {
		f(c.data)
	}
}

// Clone duplicates the handle. The duplicate shares the span's finalization
// unit and must be released independently. Clone must not be called on a
// handle that has already been released.
func (s *Span) Clone() *Span {
	s.core.refs.Add(1)
	return &Span{sc: s.sc, core: s.core}
}

// Release gives up this handle's reference. The release that drops the
// count to zero finalizes the span on the calling goroutine: the snapshot is
// taken out, its end time normalized, and the provider's current processor
// chain invoked exactly once. Release on an already-released handle is a
// no-op.
func (s *Span) Release() {
	if s.released.Swap(true) {
		return
	}
	if s.core.refs.Add(-1) == 0 {
		s.core.finalize()
	}
}

// IsRecording reports whether the span carries a snapshot. The answer is
// fixed at creation and reading it takes no lock.
func (s *Span) IsRecording() bool {
	return s.core.recording
}

// SpanContext returns the span's identity, or the invalid zero identity if
// the span is non-recording. No lock is taken.
func (s *Span) SpanContext() SpanContext {
	if !s.core.recording {
		return SpanContext{}
	}
	return s.sc
}

// SetAttribute inserts or overwrites a single attribute.
func (s *Span) SetAttribute(kv KeyValue) {
	s.core.withData(func(data *SpanData) {
		data.Attributes.Set(kv)
	})
}

// SetAttributes inserts or overwrites several attributes in order.
func (s *Span) SetAttributes(kvs ...KeyValue) {
	s.core.withData(func(data *SpanData) {
		for _, kv := range kvs {
			data.Attributes.Set(kv)
		}
	})
}

// AddEvent appends an event stamped with the current time.
func (s *Span) AddEvent(name string, attrs ...KeyValue) {
	s.AddEventWithTimestamp(name, time.Now(), attrs...)
}

// AddEventWithTimestamp appends an event with an explicit timestamp.
func (s *Span) AddEventWithTimestamp(name string, timestamp time.Time, attrs ...KeyValue) {
	s.core.withData(func(data *SpanData) {
		data.Events.PushBack(Event{Name: name, Timestamp: timestamp, Attributes: attrs})
	})
}

// RecordError appends an "exception" event describing err. It does not
// change the span status; call SetStatus separately if the error is
// terminal for the operation.
func (s *Span) RecordError(err error) {
	if err == nil {
		return
	}
	s.AddEvent("exception", String("exception.message", err.Error()))
}

// SetStatus overwrites the span status. Last write wins; concurrent callers
// are serialized through the span lock with no further ordering guarantee.
func (s *Span) SetStatus(code StatusCode, message string) {
	s.core.withData(func(data *SpanData) {
		data.Status = Status{Code: code, Message: message}
	})
}

// UpdateName overwrites the span name. Last write wins.
func (s *Span) UpdateName(name string) {
	s.core.withData(func(data *SpanData) {
		data.Name = name
	})
}

// End records an end timestamp into the snapshot: the given timestamp if one
// is supplied, the current time otherwise. End does not trigger export;
// export is driven solely by releasing the last handle. If End is never
// called, finalization supplies the fallback end time.
func (s *Span) End(timestamp ...time.Time) {
	end := time.Now()
	if len(timestamp) > 0 {
		end = timestamp[0]
	}
	s.core.withData(func(data *SpanData) {
		data.EndTime = end
	})
}

// finalize runs at most once per unit, guaranteed by the reference count
// reaching zero exactly once. It never fails: a missing snapshot, a torn-down
// provider or an empty processor chain all end in a silent drop.
func (c *spanCore) finalize() {
	if !c.recording {
		return
	}

	c.mu.Lock()
	data := c.data
	c.data = nil
	c.mu.Unlock()
	if data == nil {
		return
	}

	provider := c.tracer.resolveProvider()
	if provider == nil {
		// Tracer already shut down; discard without error.
		return
	}

	// Guarantee end >= start for every exported snapshot.
	if !data.EndTime.After(data.StartTime) {
		data.EndTime = time.Now()
	}

	processors := provider.spanProcessors()
	for i, processor := range processors {
		if i < len(processors)-1 {
			processor.OnEnd(data.Clone())
		} else {
			// Last processor receives the original without a copy.
			processor.OnEnd(data)
		}
	}
}
