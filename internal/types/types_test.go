package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	assert.Equal(t, "void", Void.String())
	assert.Equal(t, "i32", I32.String())
	assert.Equal(t, "f64", F64.String())
	assert.Contains(t, Type(200).String(), "type(")
}

func TestIsVoid(t *testing.T) {
	assert.True(t, Void.IsVoid())
	assert.False(t, I32.IsVoid())
}

func TestIsInt(t *testing.T) {
	for _, ty := range []Type{I8, I16, I32, I64} {
		assert.True(t, ty.IsInt(), ty.String())
	}
	for _, ty := range []Type{Void, B1, F32, F64} {
		assert.False(t, ty.IsInt(), ty.String())
	}
}

func TestIsFloat(t *testing.T) {
	assert.True(t, F32.IsFloat())
	assert.True(t, F64.IsFloat())
	assert.False(t, I32.IsFloat())
}

func TestValid(t *testing.T) {
	assert.True(t, I32.Valid())
	assert.False(t, Type(255).Valid())
}

func TestLookup(t *testing.T) {
	ty, ok := Lookup("i32")
	assert.True(t, ok)
	assert.Equal(t, I32, ty)

	_, ok = Lookup("u32")
	assert.False(t, ok)
}
