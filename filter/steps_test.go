// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/csg/filter"
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// apply records a call in s, or a new scope if s is nil,
// and applies the given step to it.
func apply(s *scope.Scope, st Step, op string, args []any, named value.Map) (*tree.Record, error) {
	if s == nil {
		s = scope.New(nil, nil)
	}
	el := s.Record(op, args, named, nil)
	err := st.Apply(&Context{Scope: s, Call: el, Op: op})
	return el.Record(), err
}

func TestXYZ(t *testing.T) {
	r, err := apply(nil, XYZ(0, "", true), "translate", nil, value.Map{"x": 5, "z": 2})
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{5, 0.0, 2}}, r.Args)
	assert.Equal(t, 0, r.Named.Len())

	r, err = apply(nil, XYZ(1, "size", false), "square", nil, value.Map{"y": 3})
	require.NoError(t, err)
	size, _ := r.Named.Get("size")
	assert.Equal(t, []any{1.0, 3}, size)

	r, err = apply(nil, XYZ(0, "", true), "rotate", []any{90}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{90}, r.Args)

	_, err = apply(nil, XYZ(0, "", true), "translate", nil, value.Map{"x": "far"})
	assert.ErrorIs(t, err, tree.ErrValidation)
}

func TestRename(t *testing.T) {
	st := Rename("corner_radius", "r", "cr", "corner_r")
	r, err := apply(nil, st, "cube", nil, value.Map{"cr": 1, "corner_r": 2})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"corner_radius": 1}, r.Named.ToMap())

	r, _ = apply(nil, st, "cube", nil, value.Map{"size": 2})
	assert.Equal(t, value.Map{"size": 2}, r.Named.ToMap())
}

func TestExpandedNamesDiameter(t *testing.T) {
	st := ExpandedNames("h")
	for _, d := range []any{10, 3.5, 7} {
		a, err := apply(nil, st, "circle", nil, value.Map{"d": d})
		require.NoError(t, err)
		b, err := apply(nil, st, "circle", nil, value.Map{"radius": value.FloatOr(d, 0) / 2})
		require.NoError(t, err)
		ar, _ := a.Named.Get("r")
		br, _ := b.Named.Get("r")
		assert.Equal(t, value.FloatOr(br, -1), value.FloatOr(ar, -2))
	}

	r, err := apply(nil, st, "cylinder", nil, value.Map{"width": value.Range{Start: 4, End: 10, Exclusive: true}})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"r1": 2.0, "r2": 5.0}, r.Named.ToMap())

	r, err = apply(nil, st, "cylinder", nil, value.Map{"dia": value.NewRange(4, 10)})
	require.NoError(t, err)
	r1, _ := r.Named.Get("r1")
	assert.Equal(t, 2.0, r1)

	r, err = apply(nil, st, "cylinder", nil, value.Map{"diameter2": 3, "height": 4})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"r2": 1.5, "h": 4}, r.Named.ToMap())

	_, err = apply(nil, st, "circle", nil, value.Map{"d": "wide"})
	assert.ErrorIs(t, err, tree.ErrValidation)
}

func TestExpandedNamesHeightLabel(t *testing.T) {
	r, err := apply(nil, ExpandedNames("height"), "linear_extrude", nil, value.Map{"h": 4})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"height": 4}, r.Named.ToMap())
}

func TestExpandedNamesInnerRadius(t *testing.T) {
	st := ExpandedNames("h")
	r, err := apply(nil, st, "circle", nil, value.Map{"inner_radius": 5, "sides": 6})
	require.NoError(t, err)
	rv, _ := r.Named.Get("r")
	assert.InDelta(t, 5/math.Cos(math.Pi/6), rv, 1e-12)
	fn, _ := r.Named.Get("$fn")
	assert.Equal(t, 6, fn)

	r, err = apply(nil, st, "cylinder", nil, value.Map{"inradius": value.NewRange(2, 4), "facets": 4})
	require.NoError(t, err)
	r1, _ := r.Named.Get("r1")
	r2, _ := r.Named.Get("r2")
	assert.InDelta(t, 2*math.Sqrt2, r1, 1e-12)
	assert.InDelta(t, 4*math.Sqrt2, r2, 1e-12)

	r, err = apply(nil, st, "cylinder", nil, value.Map{"id1": 4, "$fn": 4})
	require.NoError(t, err)
	r1, _ = r.Named.Get("r1")
	assert.InDelta(t, 2*math.Sqrt2, r1, 1e-12)

	_, err = apply(nil, st, "circle", nil, value.Map{"ir": 5})
	assert.ErrorIs(t, err, tree.ErrMissingParameter)
	_, err = apply(nil, st, "circle", nil, value.Map{"ir": 5, "sides": 2})
	assert.ErrorIs(t, err, tree.ErrConstraintViolation)
	_, err = apply(nil, st, "circle", nil, value.Map{"ir": 5, "sides": 4.5})
	assert.ErrorIs(t, err, tree.ErrValidation)
}

func TestLayoutDefaults(t *testing.T) {
	s := scope.New(nil, nil)
	r, err := apply(s, LayoutDefaults(), "cube", nil, value.Map{"center": true})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"center": true}, r.Named.ToMap())

	s.Defaults(value.Map{"convexity": 4}, nil)
	r, err = apply(s, LayoutDefaults(), "cube", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Map{"center": false, "convexity": 4}, r.Named.ToMap())
}

func TestResolution(t *testing.T) {
	s := scope.New(nil, nil)
	r, err := apply(s, Resolution(), "sphere", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Named.Len())

	s.Resolution(value.Map{"fragments": 8, "fragments_per_turn": 60}, nil)
	r, err = apply(s, Resolution(), "sphere", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, value.Map{"$fa": 6.0, "$fn": 8.0}, r.Named.ToMap())

	r, err = apply(s, Resolution(), "sphere", nil, value.Map{"$fn": 3})
	require.NoError(t, err)
	fn, _ := r.Named.Get("$fn")
	assert.Equal(t, 3, fn)
}

func TestValidate(t *testing.T) {
	st := Validate(Types("size", value.Vector, value.Number), OneOf("center", true, false))
	_, err := apply(nil, st, "cube", nil, value.Map{"size": []any{1, 2, 3}, "center": true})
	assert.NoError(t, err)
	_, err = apply(nil, st, "cube", nil, value.Map{"size": "big"})
	assert.ErrorIs(t, err, tree.ErrValidation)
	_, err = apply(nil, st, "cube", nil, value.Map{"center": 1})
	assert.ErrorIs(t, err, tree.ErrValidation)
	assert.Contains(t, err.Error(), "center must be true or false")
}

func TestRequireRefuse(t *testing.T) {
	_, err := apply(nil, Require("points"), "polygon", nil, nil)
	assert.ErrorIs(t, err, tree.ErrMissingParameter)
	_, err = apply(nil, Require("points"), "polygon", nil, value.Map{"points": []any{}})
	assert.NoError(t, err)

	_, err = apply(nil, Refuse("h"), "circle", nil, value.Map{"h": 3})
	assert.ErrorIs(t, err, tree.ErrValidation)
	_, err = apply(nil, Refuse("h"), "circle", nil, value.Map{"r": 3})
	assert.NoError(t, err)
}
