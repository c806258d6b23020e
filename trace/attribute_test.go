package trace

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueConstructorsAndAccessors(t *testing.T) {
	t.Parallel()

	t.Run("bool", func(t *testing.T) {
		t.Parallel()
		v := BoolValue(true)
		assert.Equal(t, ValueTypeBool, v.Type())
		assert.True(t, v.AsBool())
		assert.Equal(t, true, v.AsInterface())
		assert.Equal(t, "true", v.Emit())
	})

	t.Run("int64", func(t *testing.T) {
		t.Parallel()
		v := Int64Value(-42)
		assert.Equal(t, ValueTypeInt64, v.Type())
		assert.Equal(t, int64(-42), v.AsInt64())
		assert.Equal(t, int64(-42), v.AsInterface())
		assert.Equal(t, "-42", v.Emit())
	})

	t.Run("float64", func(t *testing.T) {
		t.Parallel()
		v := Float64Value(2.5)
		assert.Equal(t, ValueTypeFloat64, v.Type())
		assert.Equal(t, 2.5, v.AsFloat64())
		assert.Equal(t, 2.5, v.AsInterface())
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()
		v := StringValue("hello")
		assert.Equal(t, ValueTypeString, v.Type())
		assert.Equal(t, "hello", v.AsString())
		assert.Equal(t, "hello", v.AsInterface())
		assert.Equal(t, "hello", v.Emit())
	})
}

func TestValueEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Int64Value(7), Int64Value(7))
	assert.NotEqual(t, Int64Value(7), Float64Value(7))
	assert.NotEqual(t, StringValue("7"), Int64Value(7))
}

func TestKeyValueConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KeyValue{Key: "b", Value: BoolValue(true)}, Bool("b", true))
	assert.Equal(t, KeyValue{Key: "i", Value: Int64Value(3)}, Int("i", 3))
	assert.Equal(t, KeyValue{Key: "i64", Value: Int64Value(9)}, Int64("i64", 9))
	assert.Equal(t, KeyValue{Key: "f", Value: Float64Value(1.5)}, Float64("f", 1.5))
	assert.Equal(t, KeyValue{Key: "s", Value: StringValue("x")}, String("s", "x"))
}

func TestValueJSONRoundTripPreservesType(t *testing.T) {
	t.Parallel()

	values := []Value{
		BoolValue(false),
		Int64Value(1234567890123),
		Float64Value(-0.25),
		StringValue("payload"),
	}

	for _, want := range values {
		raw, err := json.Marshal(want)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, want, got, "wire form: %s", raw)
	}
}

func TestValueJSONUnknownType(t *testing.T) {
	t.Parallel()

	var v Value
	err := json.Unmarshal([]byte(`{"type":"blob","value":"x"}`), &v)
	assert.Error(t, err)
}
