// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "cogentcore.org/csg/render"
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/value"
)

func TestLeaf(t *testing.T) {
	s := scope.New(nil, nil)
	s.Record("circle", nil, value.Map{"r": 5}, nil)
	assert.Equal(t, []string{"circle(r = 5);"}, Lines(s.Elements(), DefaultOptions))
}

func TestArgs(t *testing.T) {
	s := scope.New(nil, nil)
	s.Record("cube", []any{[]any{1, 2.5, 3}, true}, value.Map{"$fn": 8, "name": "a \"b\"", "r": nil}, nil)
	s.Record("for", []any{value.NewRange(0, 10)}, nil, nil)
	assert.Equal(t, []string{
		`cube([1,2.5,3], true, $fn = 8, name = "a \"b\"", r = undef);`,
		`for([0 : 10]);`,
	}, Lines(s.Elements(), DefaultOptions))
}

func TestChildren(t *testing.T) {
	s := scope.New(nil, nil)
	s.Record("translate", []any{[]any{1, 0, 0}}, nil, func(s *scope.Scope) {
		s.Record("rotate", []any{[]any{0, 0, 90}}, nil, func(s *scope.Scope) {
			s.Record("cube", nil, nil, nil)
		})
	})
	s.Record("union", nil, nil, func(s *scope.Scope) {
		s.Record("sphere", []any{1}, nil, nil)
		s.Record("translate", []any{[]any{2, 0, 0}}, nil, func(s *scope.Scope) {
			s.Record("difference", nil, nil, func(s *scope.Scope) {
				s.Record("cube", nil, nil, nil)
				s.Record("sphere", nil, nil, nil)
			})
		})
	})
	expect := `translate([1,0,0]) rotate([0,0,90]) cube();
union() {
  sphere(1);
  translate([2,0,0]) difference() {
    cube();
    sphere();
  }
}
`
	assert.Equal(t, expect, String(s.Elements(), DefaultOptions))

	flat := `union() {
sphere(1);
translate([2,0,0]) difference() {
cube();
sphere();
}
}
`
	assert.Equal(t, flat, String(s.Elements()[1:], Options{}))

	tabs := Lines(s.Elements()[1:], Options{Clean: true, Tabs: true})
	assert.Equal(t, "\tsphere(1);", tabs[1])
}

func TestModifiersAndStatements(t *testing.T) {
	s := scope.New(nil, nil)
	s.Include("lib/bolts.scad")
	s.Use("shapes.scad")
	s.Comment("base plate")
	s.Assign("$fn", 64)
	s.Assign("label", "top")
	s.Highlight(nil)
	s.Record("cube", []any{2}, nil, nil)
	s.Background(func(s *scope.Scope) {
		s.Record("sphere", nil, nil, nil)
	})
	s.RootOnly(nil)
	s.Record("circle", nil, nil, nil)
	assert.Equal(t, []string{
		"include <lib/bolts.scad>;",
		"use <shapes.scad>;",
		"/* base plate */",
		"$fn = 64;",
		`label = "top";`,
		"#cube(2);",
		"%sphere();",
		"!circle();",
	}, Lines(s.Elements(), DefaultOptions))
}
