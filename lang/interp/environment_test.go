package interp_test

import (
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironment_DefineGetAssign(t *testing.T) {
	g := interp.NewGlobal()
	g.Define("a", interp.Number(1))

	v, ok := g.Get("a")
	require.True(t, ok)
	assert.Equal(t, interp.Number(1), v)

	ok = g.Assign("a", interp.Number(2))
	require.True(t, ok)
	v, _ = g.Get("a")
	assert.Equal(t, interp.Number(2), v)

	_, ok = g.Get("missing")
	assert.False(t, ok)
	assert.False(t, g.Assign("missing", interp.Number(0)))
}

func TestEnvironment_ChildShadowsParent(t *testing.T) {
	g := interp.NewGlobal()
	g.Define("x", interp.Number(1))

	child := interp.NewChild(g)
	child.Define("x", interp.Number(2))

	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, interp.Number(2), v, "child's own binding shadows the parent's")

	v, ok = g.Get("x")
	require.True(t, ok)
	assert.Equal(t, interp.Number(1), v, "the parent's binding is untouched by the child's shadow")
}

func TestEnvironment_AssignWritesNearestEnclosingFrame(t *testing.T) {
	g := interp.NewGlobal()
	g.Define("x", interp.Number(1))

	child := interp.NewChild(g)
	require.True(t, child.Assign("x", interp.Number(9)), "x is defined in the parent, assign must find it")

	v, _ := g.Get("x")
	assert.Equal(t, interp.Number(9), v)
}

func TestEnvironment_GetAtAssignAt(t *testing.T) {
	g := interp.NewGlobal()
	g.Define("g", interp.String("global"))

	outer := interp.NewChild(g)
	outer.Define("o", interp.String("outer"))

	inner := interp.NewChild(outer)
	inner.Define("i", interp.String("inner"))

	assert.Equal(t, interp.String("inner"), inner.GetAt(0, "i"))
	assert.Equal(t, interp.String("outer"), inner.GetAt(1, "o"))

	inner.AssignAt(1, "o", interp.String("changed"))
	v, _ := outer.Get("o")
	assert.Equal(t, interp.String("changed"), v)
}

func TestEnvironment_GetAtMismatchPanics(t *testing.T) {
	g := interp.NewGlobal()
	child := interp.NewChild(g)
	assert.Panics(t, func() { child.GetAt(0, "nope") })
}
