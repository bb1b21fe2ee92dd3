package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualIsStructural(t *testing.T) {
	assert.True(t, Int32.Equal(&Type{Kind: TypeInt32}))
	assert.False(t, Int32.Equal(Double))
	assert.False(t, Void.Equal(Bool))

	f1 := NewFunction([]*Type{Int32, Double}, Int32, false)
	f2 := NewFunction([]*Type{Int32, Double}, Int32, false)
	f3 := NewFunction([]*Type{Int32}, Int32, false)
	f4 := NewFunction([]*Type{Int32, Double}, Void, false)
	variadic := NewFunction([]*Type{Int32, Double}, Int32, true)

	assert.True(t, f1.Equal(f2))
	assert.False(t, f1.Equal(f3))
	assert.False(t, f1.Equal(f4))
	assert.False(t, f1.Equal(variadic))
	assert.False(t, f1.Equal(Int32))
}

func TestPromoteOrder(t *testing.T) {
	tests := []struct {
		a, b, want *Type
	}{
		{Bool, Bool, Bool},
		{Bool, Int32, Int32},
		{Int32, Bool, Int32},
		{Int32, Int32, Int32},
		{Int32, Double, Double},
		{Double, Bool, Double},
		{Double, Double, Double},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, Promote(tt.a, tt.b),
			"Promote(%s, %s)", tt.a, tt.b)
	}
}

func TestIsArithmetic(t *testing.T) {
	assert.True(t, Bool.IsArithmetic())
	assert.True(t, Int32.IsArithmetic())
	assert.True(t, Double.IsArithmetic())
	assert.False(t, Void.IsArithmetic())
	assert.False(t, StrLit.IsArithmetic())
	assert.False(t, NewFunction(nil, Void, false).IsArithmetic())
}

func TestNamed(t *testing.T) {
	for name, want := range map[string]*Type{
		"void":   Void,
		"bool":   Bool,
		"i32":    Int32,
		"double": Double,
	} {
		got, ok := Named(name)
		require.Truef(t, ok, "Named(%q)", name)
		assert.Same(t, want, got)
	}

	_, ok := Named("strlit")
	assert.False(t, ok, "strlit must not be nameable in source")
	_, ok = Named("int")
	assert.False(t, ok)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "i32", Int32.String())
	assert.Equal(t, "fn(i32, double) -> bool",
		NewFunction([]*Type{Int32, Double}, Bool, false).String())
	assert.Equal(t, "fn(strlit, ...) -> i32",
		NewFunction([]*Type{StrLit}, Int32, true).String())
}
