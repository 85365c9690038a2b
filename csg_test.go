// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package csg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/csg/config"
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

func TestBuild(t *testing.T) {
	b := New(nil)
	assert.True(t, b.Known("cube"))
	assert.True(t, b.Known("hexagon"))
	assert.False(t, b.Known("teapot"))

	m, err := b.Build(func(s *scope.Scope) {
		s.Comment("plate")
		s.Record("difference", nil, nil, func(s *scope.Scope) {
			s.Record("cube", nil, value.Map{"size": []any{20, 10, 2}}, nil)
			s.Record("translate", nil, value.Map{"x": 5, "y": 5}, func(s *scope.Scope) {
				s.Record("cylinder", nil, value.Map{"h": 5, "d": 3, "center": true}, nil)
			})
		})
	})
	require.NoError(t, err)
	assert.Equal(t, `/* plate */
difference() {
  cube(size = [20,10,2], center = false);
  translate([5,5,0]) cylinder(center = true, h = 5, r = 1.5);
}
`, m.String())
	assert.Len(t, m.Lines(), 5)

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	d, err := m.Dump()
	require.NoError(t, err)
	assert.Contains(t, string(d), "op: difference")
}

func TestBuildSettings(t *testing.T) {
	s := config.Default()
	s.Resolution["fragments"] = 16
	s.Defaults["center"] = true
	s.Render.Indent = 4
	m, err := New(s).Build(func(s *scope.Scope) {
		s.Record("union", nil, nil, func(s *scope.Scope) {
			s.Record("sphere", []any{2}, nil, nil)
			s.Record("cube", nil, value.Map{"center": false}, nil)
		})
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"union() {",
		"    sphere(2, $fn = 16, center = true);",
		"    cube(center = false, $fn = 16);",
		"}",
	}, m.Lines())
}

func TestBuildScopedResolution(t *testing.T) {
	m, err := New(nil).Build(func(s *scope.Scope) {
		s.Resolution(value.Map{"fragments": 6}, func(s *scope.Scope) {
			s.Record("circle", nil, value.Map{"r": 1}, nil)
		})
		s.Record("circle", nil, value.Map{"r": 1}, nil)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"circle(r = 1, $fn = 6, center = false);",
		"circle(r = 1, center = false);",
	}, m.Lines())
}

func TestBuildErrors(t *testing.T) {
	b := New(nil)
	m, err := b.Build(func(s *scope.Scope) {
		s.Record("cube", nil, nil, nil)
		s.Record("square", nil, value.Map{"size": 2, "corner_radius": 1.5}, nil)
		s.Record("sphere", nil, nil, nil)
	})
	assert.Nil(t, m)
	require.ErrorIs(t, err, tree.ErrConstraintViolation)
	assert.True(t, strings.Contains(err.Error(), "rounded_rectangle"))

	_, err = b.Build(func(s *scope.Scope) {
		s.Record("teapot", nil, nil, nil)
	})
	assert.ErrorIs(t, err, tree.ErrUnknownOperation)

	s := config.Default()
	s.Resolution["minimum"] = -1
	_, err = New(s).Build(func(s *scope.Scope) {})
	assert.ErrorIs(t, err, tree.ErrValidation)
}

func TestBuildWarnings(t *testing.T) {
	m, err := New(nil).Build(func(s *scope.Scope) {
		s.Resolution(value.Map{"fragments_per_turn": 20, "degrees_per_fragment": 10}, nil)
		s.Record("cube", []any{1}, value.Map{"size": 2}, nil)
	})
	require.NoError(t, err)
	assert.Len(t, m.Warnings, 2)
}
