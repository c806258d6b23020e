package trace

import (
	"encoding/json"
)

// EvictedMap is an insertion-ordered attribute store with a fixed capacity.
//
// Eviction policy: when an insert of a new key would exceed capacity, the
// oldest entry (by insertion order) is evicted and the dropped counter is
// incremented. Overwriting an existing key replaces its value in place and
// never evicts. A capacity of zero retains nothing and counts every insert
// as dropped.
type EvictedMap struct {
	capacity int
	keys     []string
	values   map[string]Value
	dropped  int
}

// NewEvictedMap creates an attribute store that retains at most capacity
// entries.
func NewEvictedMap(capacity int) *EvictedMap {
	if capacity < 0 {
		capacity = 0
	}
	return &EvictedMap{
		capacity: capacity,
		values:   make(map[string]Value),
	}
}

// Set inserts or overwrites an attribute. Inserting a new key past capacity
// evicts the oldest entry.
func (m *EvictedMap) Set(kv KeyValue) {
	if _, ok := m.values[kv.Key]; ok {
		m.values[kv.Key] = kv.Value
		return
	}
	if m.capacity == 0 {
		m.dropped++
		return
	}
	if len(m.keys) == m.capacity {
		oldest := m.keys[0]
		m.keys = m.keys[1:]
		delete(m.values, oldest)
		m.dropped++
	}
	m.keys = append(m.keys, kv.Key)
	m.values[kv.Key] = kv.Value
}

// Get returns the value stored under key.
func (m *EvictedMap) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of retained attributes.
func (m *EvictedMap) Len() int {
	return len(m.keys)
}

// Capacity returns the fixed capacity set at construction.
func (m *EvictedMap) Capacity() int {
	return m.capacity
}

// DroppedCount returns how many inserts were evicted or rejected.
func (m *EvictedMap) DroppedCount() int {
	return m.dropped
}

// All returns the retained attributes in insertion order.
func (m *EvictedMap) All() []KeyValue {
	out := make([]KeyValue, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, KeyValue{Key: k, Value: m.values[k]})
	}
	return out
}

// Clone returns an independently owned copy of the store.
func (m *EvictedMap) Clone() *EvictedMap {
	clone := &EvictedMap{
		capacity: m.capacity,
		keys:     append([]string(nil), m.keys...),
		values:   make(map[string]Value, len(m.values)),
		dropped:  m.dropped,
	}
	for k, v := range m.values {
		clone.values[k] = v
	}
	return clone
}

type evictedMapJSON struct {
	Capacity int        `json:"capacity"`
	Entries  []KeyValue `json:"entries"`
	Dropped  int        `json:"dropped"`
}

// MarshalJSON encodes capacity, retained entries in insertion order, and the
// dropped counter.
func (m *EvictedMap) MarshalJSON() ([]byte, error) {
	return json.Marshal(evictedMapJSON{
		Capacity: m.capacity,
		Entries:  m.All(),
		Dropped:  m.dropped,
	})
}

// UnmarshalJSON decodes a store encoded by MarshalJSON.
func (m *EvictedMap) UnmarshalJSON(data []byte) error {
	var raw evictedMapJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.capacity = raw.Capacity
	m.keys = m.keys[:0]
	m.values = make(map[string]Value, len(raw.Entries))
	m.dropped = raw.Dropped
	for _, kv := range raw.Entries {
		m.keys = append(m.keys, kv.Key)
		m.values[kv.Key] = kv.Value
	}
	return nil
}

// EvictedQueue is a FIFO container with a fixed capacity, used for span
// events and links.
//
// Eviction policy: pushing past capacity drops the oldest item and
// increments the dropped counter. A capacity of zero retains nothing.
type EvictedQueue[T any] struct {
	capacity int
	items    []T
	dropped  int
}

// NewEvictedQueue creates a queue that retains at most capacity items.
func NewEvictedQueue[T any](capacity int) *EvictedQueue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &EvictedQueue[T]{capacity: capacity}
}

// PushBack appends an item, evicting the oldest if the queue is full.
func (q *EvictedQueue[T]) PushBack(item T) {
	if q.capacity == 0 {
		q.dropped++
		return
	}
	if len(q.items) == q.capacity {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
		q.dropped++
	}
	q.items = append(q.items, item)
}

// Len returns the number of retained items.
func (q *EvictedQueue[T]) Len() int {
	return len(q.items)
}

// Capacity returns the fixed capacity set at construction.
func (q *EvictedQueue[T]) Capacity() int {
	return q.capacity
}

// DroppedCount returns how many items were evicted or rejected.
func (q *EvictedQueue[T]) DroppedCount() int {
	return q.dropped
}

// All returns the retained items in insertion order.
func (q *EvictedQueue[T]) All() []T {
	return append([]T(nil), q.items...)
}

// Clone returns an independently owned copy of the queue.
func (q *EvictedQueue[T]) Clone() *EvictedQueue[T] {
	return &EvictedQueue[T]{
		capacity: q.capacity,
		items:    append([]T(nil), q.items...),
		dropped:  q.dropped,
	}
}

type evictedQueueJSON[T any] struct {
	Capacity int `json:"capacity"`
	Items    []T `json:"items"`
	Dropped  int `json:"dropped"`
}

// MarshalJSON encodes capacity, retained items in insertion order, and the
// dropped counter.
func (q *EvictedQueue[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(evictedQueueJSON[T]{
		Capacity: q.capacity,
		Items:    q.All(),
		Dropped:  q.dropped,
	})
}

// UnmarshalJSON decodes a queue encoded by MarshalJSON.
func (q *EvictedQueue[T]) UnmarshalJSON(data []byte) error {
	var raw evictedQueueJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.capacity = raw.Capacity
	q.items = raw.Items
	q.dropped = raw.Dropped
	return nil
}
