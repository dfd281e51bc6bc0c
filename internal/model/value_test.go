package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataType(t *testing.T) {
	t.Run("accepts every catalog type", func(t *testing.T) {
		for _, name := range []string{"exec", "bool", "i32", "f32", "string", "unit"} {
			dt, err := ParseDataType(name)
			require.NoError(t, err)
			assert.Equal(t, DataType(name), dt)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseDataType("i64")
		assert.ErrorContains(t, err, "unknown data type")
	})
}

func TestZeroValue(t *testing.T) {
	assert.Equal(t, BoolValue(false), ZeroValue(TypeBool))
	assert.Equal(t, IntValue(0), ZeroValue(TypeI32))
	assert.Equal(t, FloatValue(0), ZeroValue(TypeF32))
	assert.Equal(t, StringValue(""), ZeroValue(TypeString))
	assert.Equal(t, UnitValue(), ZeroValue(TypeUnit))
	assert.Equal(t, UnitValue(), ZeroValue(TypeExec))
}

func TestValueAccessors(t *testing.T) {
	t.Run("matching type", func(t *testing.T) {
		s, ok := StringValue("hi").AsString()
		require.True(t, ok)
		assert.Equal(t, "hi", s)

		b, ok := BoolValue(true).AsBool()
		require.True(t, ok)
		assert.True(t, b)

		i, ok := IntValue(42).AsInt()
		require.True(t, ok)
		assert.Equal(t, int32(42), i)

		f, ok := FloatValue(1.5).AsFloat()
		require.True(t, ok)
		assert.Equal(t, float32(1.5), f)
	})

	t.Run("mismatched type yields false", func(t *testing.T) {
		_, ok := IntValue(1).AsString()
		assert.False(t, ok)
		_, ok = StringValue("true").AsBool()
		assert.False(t, ok)
	})
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "7", IntValue(7).String())
	assert.Equal(t, "hi", StringValue("hi").String())
	assert.Equal(t, "()", UnitValue().String())
}
