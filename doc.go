// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package csg builds constructive solid geometry models from shape
construction calls, and renders them as OpenSCAD code.

Calls are recorded into a [scope.Scope], which threads resolution and
default argument settings through nested construction:

	b := csg.New(nil)
	m, err := b.Build(func(s *scope.Scope) {
		s.Record("difference", nil, nil, func(s *scope.Scope) {
			s.Record("cube", nil, value.Map{"size": 10, "corner_radius": 1, "center": true}, nil)
			s.Record("cylinder", nil, value.Map{"h": 12, "d": 4, "center": true}, nil)
		})
	})
	fmt.Print(m)

Each call runs through the filter pipeline of its operation (see package
filter), which normalizes argument names and forms, and may substitute a
synthesized subtree, as done for the rounded shapes of package shapes.
The finished tree is rendered by package render.
*/
package csg
