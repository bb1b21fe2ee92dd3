package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elqu/hxwk/internal/types"
)

func TestLookupScansOutward(t *testing.T) {
	s := NewScopes()
	s.DefineHere("x", Handle{T: types.Int32})

	s.Enter()
	h, ok := s.Lookup("x")
	require.True(t, ok, "outer binding must be visible in inner frame")
	assert.Equal(t, types.Int32, h.T)

	_, ok = s.Lookup("y")
	assert.False(t, ok)
}

func TestShadowing(t *testing.T) {
	s := NewScopes()
	s.DefineHere("x", Handle{T: types.Int32})

	s.Enter()
	s.DefineHere("x", Handle{T: types.Double})

	h, ok := s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Double, h.T, "inner binding shadows outer")

	s.Exit()
	h, ok = s.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, types.Int32, h.T, "outer binding restored after exit")
}

func TestLookupLocal(t *testing.T) {
	s := NewScopes()
	s.DefineHere("x", Handle{T: types.Int32})

	s.Enter()
	_, ok := s.LookupLocal("x")
	assert.False(t, ok, "LookupLocal must not see outer frames")

	s.DefineHere("x", Handle{T: types.Double})
	h, ok := s.LookupLocal("x")
	require.True(t, ok)
	assert.Equal(t, types.Double, h.T)
}

func TestGlobalFrameIsNeverPopped(t *testing.T) {
	s := NewScopes()
	s.DefineHere("printf", Handle{T: types.NewFunction([]*types.Type{types.StrLit}, types.Int32, true)})

	assert.Equal(t, 1, s.Depth())
	s.Exit()
	assert.Equal(t, 1, s.Depth())

	_, ok := s.Lookup("printf")
	assert.True(t, ok)
}

func TestHandleValidity(t *testing.T) {
	assert.False(t, Handle{}.Valid())
	assert.True(t, VoidHandle().Valid())
	assert.Equal(t, types.Void, VoidHandle().T)
}
