package interp_test

import (
	"testing"

	"github.com/mna/lox/lang/interp"
	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    interp.Value
		want bool
	}{
		{interp.Nil, false},
		{interp.Bool(false), false},
		{interp.Bool(true), true},
		{interp.Number(0), true},
		{interp.String(""), true},
		{interp.String("x"), true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, interp.Truthy(c.v), "%#v", c.v)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, interp.Equal(interp.Nil, interp.Nil))
	assert.False(t, interp.Equal(interp.Nil, interp.Bool(false)))
	assert.True(t, interp.Equal(interp.Number(1), interp.Number(1)))
	assert.False(t, interp.Equal(interp.Number(1), interp.Number(2)))
	assert.True(t, interp.Equal(interp.String("a"), interp.String("a")))
	assert.False(t, interp.Equal(interp.String("a"), interp.Number(0)))

	c1 := &interp.Class{Name: "C"}
	c2 := &interp.Class{Name: "C"}
	assert.True(t, interp.Equal(c1, c1))
	assert.False(t, interp.Equal(c1, c2), "distinct class values with the same name are not equal")
}

func TestNumberString(t *testing.T) {
	assert.Equal(t, "3", interp.Number(3).String())
	assert.Equal(t, "3.5", interp.Number(3.5).String())
	assert.Equal(t, "0", interp.Number(0).String())
}

func TestBoolString(t *testing.T) {
	assert.Equal(t, "true", interp.Bool(true).String())
	assert.Equal(t, "false", interp.Bool(false).String())
}
