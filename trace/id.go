package trace

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TraceID identifies a whole trace. The zero value is the well-defined
// invalid identity.
type TraceID [16]byte

// SpanID identifies a single span within a trace. The zero value is the
// well-defined invalid identity.
type SpanID [8]byte

// TraceFlags carries per-trace option bits, currently only the sampled flag.
type TraceFlags byte

// FlagsSampled marks a trace whose spans are recorded and exported.
const FlagsSampled TraceFlags = 0x01

// IsValid reports whether the trace ID is non-zero.
func (t TraceID) IsValid() bool {
	return t != TraceID{}
}

// String returns the lowercase hex form of the trace ID.
func (t TraceID) String() string {
	return hex.EncodeToString(t[:])
}

// MarshalJSON encodes the trace ID as a hex string.
func (t TraceID) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a hex string into the trace ID.
func (t *TraceID) UnmarshalJSON(data []byte) error {
	return unmarshalHexID(data, t[:], "trace id")
}

// IsValid reports whether the span ID is non-zero.
func (s SpanID) IsValid() bool {
	return s != SpanID{}
}

// String returns the lowercase hex form of the span ID.
func (s SpanID) String() string {
	return hex.EncodeToString(s[:])
}

// MarshalJSON encodes the span ID as a hex string.
func (s SpanID) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a hex string into the span ID.
func (s *SpanID) UnmarshalJSON(data []byte) error {
	return unmarshalHexID(data, s[:], "span id")
}

func unmarshalHexID(data []byte, dst []byte, what string) error {
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	decoded, err := hex.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", what, encoded, err)
	}
	if len(decoded) != len(dst) {
		return fmt.Errorf("invalid %s %q: expected %d bytes, got %d", what, encoded, len(dst), len(decoded))
	}
	copy(dst, decoded)
	return nil
}

// SpanContext is the opaque identity of a span: the trace it belongs to, its
// own ID, and the trace option flags. It is equality-comparable; the zero
// value is the invalid identity returned for non-recording spans.
type SpanContext struct {
	TraceID    TraceID    `json:"trace_id"`
	SpanID     SpanID     `json:"span_id"`
	TraceFlags TraceFlags `json:"trace_flags"`
}

// IsValid reports whether both the trace ID and span ID are non-zero.
func (sc SpanContext) IsValid() bool {
	return sc.TraceID.IsValid() && sc.SpanID.IsValid()
}

// IsSampled reports whether the sampled flag is set.
func (sc SpanContext) IsSampled() bool {
	return sc.TraceFlags&FlagsSampled != 0
}

// IDGenerator produces trace and span identities for new spans.
// Implementations must be safe for concurrent use.
type IDGenerator interface {
	// NewIDs returns a new trace ID and a span ID for a root span.
	NewIDs() (TraceID, SpanID)

	// NewSpanID returns a new span ID for a child span within traceID.
	NewSpanID(traceID TraceID) SpanID
}

// randomIDGenerator generates identities from crypto/rand. If the system
// randomness source fails, it falls back to time-derived bytes so span
// creation never fails.
type randomIDGenerator struct{}

func newRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NewIDs() (TraceID, SpanID) {
	var tid TraceID
	fillRandom(tid[:])
	var sid SpanID
	fillRandom(sid[:])
	return tid, sid
}

func (g randomIDGenerator) NewSpanID(traceID TraceID) SpanID {
	var sid SpanID
	fillRandom(sid[:])
	return sid
}

func fillRandom(dst []byte) {
	if _, err := rand.Read(dst); err != nil {
		// Fallback to time-based bytes if crypto/rand fails.
		now := time.Now().UnixNano()
		for i := range dst {
			dst[i] = byte(now >> (uint(i%8) * 8))
		}
	}
	// Guard against the all-zero invalid sentinel.
	allZero := true
	for _, b := range dst {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		dst[len(dst)-1] = 1
	}
}
