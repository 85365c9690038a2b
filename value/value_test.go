// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	assert.Equal(t, Nil, TypeOf(nil))
	assert.Equal(t, Number, TypeOf(3))
	assert.Equal(t, Number, TypeOf(float32(2.5)))
	assert.Equal(t, Number, TypeOf(uint8(2)))
	assert.Equal(t, Bool, TypeOf(true))
	assert.Equal(t, String, TypeOf("a"))
	assert.Equal(t, Vector, TypeOf([]any{1, 2}))
	assert.Equal(t, Vector, TypeOf([3]float64{1, 2, 3}))
	assert.Equal(t, RangeType, TypeOf(NewRange(1, 2)))
	assert.Equal(t, ExprType, TypeOf(Expr("$t")))
	assert.Equal(t, Other, TypeOf(struct{}{}))
	assert.Equal(t, "vector", Vector.String())
}

func TestFloats(t *testing.T) {
	f, ok := Floats([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, f)
	_, ok = Floats([]any{1, "x"})
	assert.False(t, ok)
	assert.Equal(t, 4.0, FloatOr("x", 4))
	assert.True(t, IsWhole(6.0))
	assert.False(t, IsWhole(6.5))
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.True(t, Truthy(0))
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "undef"},
		{true, "true"},
		{5, "5"},
		{5.0, "5"},
		{2.5, "2.5"},
		{-0.125, "-0.125"},
		{1e21, "1e+21"},
		{1e-7, "1e-7"},
		{math.NaN(), "undef"},
		{math.Inf(1), "1e1000"},
		{"a \"b\"\n<c>", `"a \"b\"\n<c>"`},
		{[]any{1, 2.5, []int{3}}, "[1,2.5,[3]]"},
		{[2]float64{0, 1}, "[0,1]"},
		{NewRange(1, 5), "[1 : 5]"},
		{Expr("$t * 360"), "$t * 360"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Literal(tt.in), "%#v", tt.in)
	}
}

func TestArgs(t *testing.T) {
	a := NewArgs(Map{"r": 5, "h": 10, "center": true})
	assert.Equal(t, []string{"center", "h", "r"}, a.Keys())
	a.Set("$fn", 12)
	assert.True(t, a.Has("$fn"))
	assert.False(t, a.SetMissing("r", 1))

	v, ok := a.Delete("h")
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, `center: true, r: 5, $fn: 12`, a.String())

	defaults := NewArgs(Map{"center": false, "convexity": 2})
	a.MergeMissing(defaults)
	c, _ := a.Get("center")
	assert.Equal(t, true, c)
	assert.Equal(t, []string{"center", "r", "$fn", "convexity"}, a.Keys())

	cl := a.Clone()
	cl.Set("extra", 1)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 5, cl.Len())
	assert.Equal(t, Map{"center": true, "r": 5, "$fn": 12, "convexity": 2}, a.ToMap())

	var nilArgs *Args
	assert.Equal(t, 0, nilArgs.Len())
	assert.False(t, nilArgs.Has("x"))
}
