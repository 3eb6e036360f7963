/*
File    : zoe/environment/environment_test.go
Author  : the zoe project
License : MIT
*/

package environment

import (
	"testing"

	"github.com/akashmaji946/zoe/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndLookup(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Declare("x", value.NewInteger(1)))
	v, ok := e.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestRedeclareInSameFrameIsError(t *testing.T) {
	e := New(nil)
	require.NoError(t, e.Declare("x", value.NewInteger(1)))
	assert.Error(t, e.Declare("x", value.NewInteger(2)))
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New(nil)
	require.NoError(t, parent.Declare("x", value.NewInteger(1)))
	child := New(parent)
	v, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "1", v.String())
}

func TestShadowingHidesParentBinding(t *testing.T) {
	parent := New(nil)
	require.NoError(t, parent.Declare("x", value.NewInteger(1)))
	child := New(parent)
	require.NoError(t, child.Declare("x", value.NewInteger(2)))

	v, _ := child.Lookup("x")
	assert.Equal(t, "2", v.String())
	pv, _ := parent.Lookup("x")
	assert.Equal(t, "1", pv.String())
}

func TestAssignOverwritesNearestBinding(t *testing.T) {
	parent := New(nil)
	require.NoError(t, parent.Declare("x", value.NewInteger(1)))
	child := New(parent)

	assert.True(t, child.Assign("x", value.NewInteger(9)))
	v, _ := parent.Lookup("x")
	assert.Equal(t, "9", v.String())
}

func TestAssignToUndefinedFails(t *testing.T) {
	e := New(nil)
	assert.False(t, e.Assign("missing", value.NewInteger(1)))
}

func TestLookupUndefinedFails(t *testing.T) {
	e := New(nil)
	_, ok := e.Lookup("missing")
	assert.False(t, ok)
}
