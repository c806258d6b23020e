package trace

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValueType identifies the concrete type carried by a Value.
type ValueType int

const (
	// ValueTypeInvalid marks the zero Value, which carries nothing.
	ValueTypeInvalid ValueType = iota

	// ValueTypeBool marks a boolean Value.
	ValueTypeBool

	// ValueTypeInt64 marks a 64-bit signed integer Value.
	ValueTypeInt64

	// ValueTypeFloat64 marks a 64-bit floating point Value.
	ValueTypeFloat64

	// ValueTypeString marks a string Value.
	ValueTypeString
)

// String returns the wire name of the value type.
func (t ValueType) String() string {
	switch t {
	case ValueTypeBool:
		return "bool"
	case ValueTypeInt64:
		return "int64"
	case ValueTypeFloat64:
		return "float64"
	case ValueTypeString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a typed attribute value. It is equality-comparable, so two
// attributes with the same key and value compare equal.
type Value struct {
	vtype    ValueType
	numeric  uint64
	stringly string
}

// BoolValue creates a boolean Value.
func BoolValue(v bool) Value {
	var n uint64
	if v {
		n = 1
	}
	return Value{vtype: ValueTypeBool, numeric: n}
}

// Int64Value creates an integer Value.
func Int64Value(v int64) Value {
	return Value{vtype: ValueTypeInt64, numeric: uint64(v)}
}

// Float64Value creates a floating point Value.
func Float64Value(v float64) Value {
	return Value{vtype: ValueTypeFloat64, numeric: math.Float64bits(v)}
}

// StringValue creates a string Value.
func StringValue(v string) Value {
	return Value{vtype: ValueTypeString, stringly: v}
}

// Type returns the concrete type carried by the value.
func (v Value) Type() ValueType {
	return v.vtype
}

// AsBool returns the boolean value. Valid only for ValueTypeBool.
func (v Value) AsBool() bool {
	return v.numeric == 1
}

// AsInt64 returns the integer value. Valid only for ValueTypeInt64.
func (v Value) AsInt64() int64 {
	return int64(v.numeric)
}

// AsFloat64 returns the floating point value. Valid only for ValueTypeFloat64.
func (v Value) AsFloat64() float64 {
	return math.Float64frombits(v.numeric)
}

// AsString returns the string value. Valid only for ValueTypeString.
func (v Value) AsString() string {
	return v.stringly
}

// AsInterface returns the value boxed in its natural Go type.
func (v Value) AsInterface() interface{} {
	switch v.vtype {
	case ValueTypeBool:
		return v.AsBool()
	case ValueTypeInt64:
		return v.AsInt64()
	case ValueTypeFloat64:
		return v.AsFloat64()
	case ValueTypeString:
		return v.AsString()
	default:
		return nil
	}
}

// Emit renders the value as a string for logging and console output.
func (v Value) Emit() string {
	switch v.vtype {
	case ValueTypeString:
		return v.stringly
	default:
		return fmt.Sprint(v.AsInterface())
	}
}

type valueJSON struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"value"`
}

// MarshalJSON encodes the value together with its type so the wire form
// round-trips to an equal Value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(valueJSON{Type: v.vtype.String(), Payload: v.AsInterface()})
}

// UnmarshalJSON decodes a value encoded by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "bool":
		var b bool
		if err := json.Unmarshal(raw.Payload, &b); err != nil {
			return err
		}
		*v = BoolValue(b)
	case "int64":
		var n int64
		if err := json.Unmarshal(raw.Payload, &n); err != nil {
			return err
		}
		*v = Int64Value(n)
	case "float64":
		var f float64
		if err := json.Unmarshal(raw.Payload, &f); err != nil {
			return err
		}
		*v = Float64Value(f)
	case "string":
		var s string
		if err := json.Unmarshal(raw.Payload, &s); err != nil {
			return err
		}
		*v = StringValue(s)
	default:
		return fmt.Errorf("unknown attribute value type %q", raw.Type)
	}
	return nil
}

// KeyValue is a single span attribute.
type KeyValue struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) KeyValue {
	return KeyValue{Key: key, Value: BoolValue(value)}
}

// Int creates an integer attribute from an int.
func Int(key string, value int) KeyValue {
	return Int64(key, int64(value))
}

// Int64 creates an integer attribute.
func Int64(key string, value int64) KeyValue {
	return KeyValue{Key: key, Value: Int64Value(value)}
}

// Float64 creates a floating point attribute.
func Float64(key string, value float64) KeyValue {
	return KeyValue{Key: key, Value: Float64Value(value)}
}

// String creates a string attribute.
func String(key, value string) KeyValue {
	return KeyValue{Key: key, Value: StringValue(value)}
}
