// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter provides the per-operation filter pipeline that
// normalizes recorded calls, and may substitute a synthesized subtree
// for them through a primary [Processor].
package filter

import (
	"cogentcore.org/csg/scope"
	"cogentcore.org/csg/tree"
	"cogentcore.org/csg/value"
)

// Context is the context in which a [Step] or [Processor] runs.
type Context struct {

	// Scope is the scope the call was recorded in.
	Scope *scope.Scope

	// Call is the call being transformed.
	Call tree.Element

	// Op is the operation name the call was made with,
	// before any alias renaming.
	Op string
}

// Record returns the record of the call.
func (c *Context) Record() *tree.Record {
	return c.Call.Record()
}

// Named returns the named arguments of the call.
func (c *Context) Named() *value.Args {
	r := c.Record()
	if r.Named == nil {
		r.Named = value.NewArgs(nil)
	}
	return r.Named
}

// Errorf returns a new [tree.Error] of the given kind for the call.
func (c *Context) Errorf(kind tree.ErrorKind, format string, a ...any) *tree.Error {
	return tree.Errorf(kind, c.Op, format, a...)
}

// Step is one named normalization step of a filter list.
type Step struct {

	// Name is the name of the step. A step queued with [Builder.Filter]
	// replaces a default step of the same name.
	Name string

	// Params are the parameters the step was made with, for diagnostics.
	Params value.Map

	// Apply applies the step to the call in the given context,
	// modifying it in place.
	Apply func(c *Context) error
}

func (st Step) String() string {
	if len(st.Params) == 0 {
		return st.Name
	}
	return st.Name + "(" + value.NewArgs(st.Params).String() + ")"
}
